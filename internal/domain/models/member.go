package models

import "time"

// TeamMember is a person on the workspace roster.
//
// Credentials are an exact-match pair of display name and password, per the
// roster-as-directory model this tool inherits: the roster is small, fully
// trusted, and editable by admins from the Team page. Exactly one member is
// expected to carry IsAdmin=true (the "root" account); that convention is
// not enforced by the store.
type TeamMember struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Role     string `bson:"role" json:"role"`
	Avatar   string `bson:"avatar" json:"avatar"`
	Password string `bson:"password,omitempty" json:"password,omitempty"`
	IsAdmin  bool   `bson:"is_admin,omitempty" json:"isAdmin,omitempty"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the member's collection identity.
func (m TeamMember) EntityID() string { return m.ID }

// Redacted returns a copy safe to hand to other members (no password).
func (m TeamMember) Redacted() TeamMember {
	m.Password = ""
	return m
}
