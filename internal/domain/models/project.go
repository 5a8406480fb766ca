package models

import "time"

// ProjectStage is one step in a project's progress checklist.
//
// CompletedBy holds the completing member's id (stable across renames);
// the display name is resolved against the roster at render time. Both
// attribution fields are set only on the false→true transition and cleared
// when a stage is reopened.
type ProjectStage struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	IsCompleted bool   `bson:"is_completed" json:"isCompleted"`
	CompletedBy string `bson:"completed_by,omitempty" json:"completedBy,omitempty"`
	CompletedAt string `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

// Project is a piece of team work tracked through ordered stages.
//
// Notes is an unstructured string list, newest first. Promoted marks the
// project as pinned to the sidebar quick-access list; it survives reloads
// but the pinned list itself is always rebuilt from this flag.
type Project struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	CreatedAt   string         `bson:"created_at_label" json:"createdAt"`
	Stages      []ProjectStage `bson:"stages" json:"stages"`
	Notes       []string       `bson:"notes,omitempty" json:"notes,omitempty"`
	IsArchived  bool           `bson:"is_archived,omitempty" json:"isArchived,omitempty"`
	Promoted    bool           `bson:"promoted,omitempty" json:"promoted,omitempty"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the project's collection identity.
func (p Project) EntityID() string { return p.ID }

// Stage returns the stage with the given id, or nil.
func (p *Project) Stage(stageID string) *ProjectStage {
	for i := range p.Stages {
		if p.Stages[i].ID == stageID {
			return &p.Stages[i]
		}
	}
	return nil
}
