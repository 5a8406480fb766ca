package models

import "time"

// ActivityLog is one append-only audit record: who did what, in free text.
//
// UserID references the acting TeamMember by id; display names are looked
// up at render time so renaming a member does not orphan their history.
// Time is a relative label captured at emission ("ahora"), kept as-is.
type ActivityLog struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Action string `bson:"action" json:"action"`
	UserID string `bson:"user_id" json:"userId"`
	Time   string `bson:"time" json:"time"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the log entry's collection identity.
func (l ActivityLog) EntityID() string { return l.ID }
