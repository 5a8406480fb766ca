package models

import (
	"fmt"
	"time"
)

// AgendaType classifies a personal agenda entry.
type AgendaType string

const (
	AgendaCall    AgendaType = "llamar"
	AgendaTask    AgendaType = "hacer"
	AgendaTeam    AgendaType = "equipo"
	AgendaPropose AgendaType = "proponer"
	AgendaMeeting AgendaType = "reunion"
	AgendaOther   AgendaType = "otro"
)

// AgendaItem is one dated entry on a member's personal agenda.
// Date is YYYY-MM-DD and Time is zero-padded HH:MM; both are compared as
// plain strings, which is ordering-correct for these formats.
type AgendaItem struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Type        AgendaType `bson:"type" json:"type"`
	Date        string     `bson:"date" json:"date"`
	Time        string     `bson:"time" json:"time"`
	UserID      string     `bson:"user_id" json:"userId"`
	UserName    string     `bson:"user_name" json:"userName"`
	UserAvatar  string     `bson:"user_avatar" json:"userAvatar"`
	CreatedAt   string     `bson:"created_at_label" json:"createdAt"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the agenda item's collection identity.
func (a AgendaItem) EntityID() string { return a.ID }

// Validate checks required fields and the type tag.
func (a AgendaItem) Validate() error {
	if a.Title == "" || a.Date == "" || a.Time == "" {
		return fmt.Errorf("title, date and time are required")
	}
	switch a.Type {
	case AgendaCall, AgendaTask, AgendaTeam, AgendaPropose, AgendaMeeting, AgendaOther:
		return nil
	default:
		return fmt.Errorf("unknown agenda type %q", a.Type)
	}
}
