package models

import (
	"fmt"
	"time"
)

// ChatContextType tags what a shared chat attachment points at.
type ChatContextType string

const (
	ChatContextAsset   ChatContextType = "asset"
	ChatContextProject ChatContextType = "project"
	ChatContextBrand   ChatContextType = "brand"
)

// ChatContext is a denormalized snapshot of an entity attached to a message
// at send time. It is deliberately not a live reference: later edits or
// deletes of the underlying entity leave the message unchanged.
type ChatContext struct {
	ID        string          `bson:"id" json:"id"`
	Type      ChatContextType `bson:"type" json:"type"`
	Title     string          `bson:"title" json:"title"`
	Thumbnail string          `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Detail    string          `bson:"detail,omitempty" json:"detail,omitempty"`
}

// Validate checks the context's type tag.
func (c ChatContext) Validate() error {
	switch c.Type {
	case ChatContextAsset, ChatContextProject, ChatContextBrand:
		return nil
	default:
		return fmt.Errorf("unknown chat context type %q", c.Type)
	}
}

// ChatMessage is one message in the team chat, oldest first.
type ChatMessage struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	UserID    string       `bson:"user_id" json:"userId"`
	Content   string       `bson:"content" json:"content"`
	Timestamp string       `bson:"timestamp" json:"timestamp"`
	Context   *ChatContext `bson:"context,omitempty" json:"context,omitempty"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the message's collection identity.
func (m ChatMessage) EntityID() string { return m.ID }
