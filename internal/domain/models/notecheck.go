package models

import (
	"fmt"
	"time"
)

// NoteCheckType tags the variant of a NoteCheck.
type NoteCheckType string

const (
	NoteVariant      NoteCheckType = "note"
	ChecklistVariant NoteCheckType = "checklist"
)

// CheckItem is one tickable line inside a checklist.
type CheckItem struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Text      string `bson:"text" json:"text"`
	Completed bool   `bson:"completed" json:"completed"`
}

// NoteCheck is either a free-text note or a checklist, owned by one member.
// Content is used by the note variant, Items by the checklist variant;
// Validate enforces the split. Published entries are visible to the whole
// team on the shared board.
type NoteCheck struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Type        NoteCheckType `bson:"type" json:"type"`
	Title       string        `bson:"title" json:"title"`
	Content     string        `bson:"content,omitempty" json:"content,omitempty"`
	Items       []CheckItem   `bson:"items,omitempty" json:"items,omitempty"`
	UserID      string        `bson:"user_id" json:"userId"`
	UserName    string        `bson:"user_name" json:"userName"`
	UserAvatar  string        `bson:"user_avatar" json:"userAvatar"`
	CreatedAt   string        `bson:"created_at_label" json:"createdAt"`
	IsPublished bool          `bson:"is_published" json:"isPublished"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the note's collection identity.
func (n NoteCheck) EntityID() string { return n.ID }

// Validate checks the variant shape.
func (n NoteCheck) Validate() error {
	switch n.Type {
	case NoteVariant:
		if len(n.Items) > 0 {
			return fmt.Errorf("note must not carry checklist items")
		}
	case ChecklistVariant:
		if n.Content != "" {
			return fmt.Errorf("checklist must not carry note content")
		}
	default:
		return fmt.Errorf("unknown note type %q", n.Type)
	}
	if n.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// Item returns the check item with the given id, or nil.
func (n *NoteCheck) Item(itemID string) *CheckItem {
	for i := range n.Items {
		if n.Items[i].ID == itemID {
			return &n.Items[i]
		}
	}
	return nil
}
