package models

import (
	"fmt"
	"time"
)

// ResponseType is a member's answer to a meeting proposal.
type ResponseType string

const (
	ResponseOK        ResponseType = "ok"
	ResponseCant      ResponseType = "no_puedo"
	ResponsePrivately ResponseType = "hablame_privado"
	ResponseLater     ResponseType = "decirme_despues"
)

// ValidResponse reports whether r is one of the known answer values.
func ValidResponse(r ResponseType) bool {
	switch r {
	case ResponseOK, ResponseCant, ResponsePrivately, ResponseLater:
		return true
	}
	return false
}

// ProposalResponse is one member's answer to a proposal. At most one
// response exists per (proposal, user) pair; re-answering updates in place.
type ProposalResponse struct {
	ID         string       `bson:"_id,omitempty" json:"id"`
	ProposalID string       `bson:"proposal_id,omitempty" json:"proposalId,omitempty"`
	UserID     string       `bson:"user_id" json:"userId"`
	UserName   string       `bson:"user_name" json:"userName"`
	UserAvatar string       `bson:"user_avatar" json:"userAvatar"`
	Response   ResponseType `bson:"response" json:"response"`
}

// Proposal is a meeting suggestion the team votes on.
type Proposal struct {
	ID          string             `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	UserID      string             `bson:"user_id" json:"userId"`
	UserName    string             `bson:"user_name" json:"userName"`
	UserAvatar  string             `bson:"user_avatar" json:"userAvatar"`
	Responses   []ProposalResponse `bson:"responses" json:"responses"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the proposal's collection identity.
func (p Proposal) EntityID() string { return p.ID }

// Validate checks required scheduling fields.
func (p Proposal) Validate() error {
	if p.Title == "" || p.Date == "" || p.Time == "" {
		return fmt.Errorf("title, date and time are required")
	}
	return nil
}

// ResponseBy returns the response from the given user, or nil.
func (p *Proposal) ResponseBy(userID string) *ProposalResponse {
	for i := range p.Responses {
		if p.Responses[i].UserID == userID {
			return &p.Responses[i]
		}
	}
	return nil
}
