package projects

import (
	"errors"
	"testing"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/davidmarban/crewdeck/internal/testutil"
)

func TestCreateAssignsIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	created, err := store.Create(ctx, models.Project{
		Title: "Launch",
		Stages: []models.ProjectStage{
			{Title: "Design"},
			{Title: "Build"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("project got no id")
	}
	for i, st := range created.Stages {
		if st.ID == "" {
			t.Fatalf("stage %d got no id", i)
		}
	}
	if created.CreatedAt == "" {
		t.Fatalf("created-at label not defaulted")
	}
}

func TestUpdateStage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	created, err := store.Create(ctx, models.Project{
		Title:  "Launch",
		Stages: []models.ProjectStage{{Title: "Design"}, {Title: "Build"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stage := created.Stages[0]
	stage.IsCompleted = true
	stage.CompletedBy = "u-ana"
	stage.CompletedAt = "2026-08-29"

	stored, err := store.UpdateStage(ctx, created.ID, stage)
	if err != nil {
		t.Fatalf("UpdateStage: %v", err)
	}
	if !stored.IsCompleted || stored.CompletedBy != "u-ana" {
		t.Fatalf("stored stage = %+v", stored)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if st := got.Stage(stage.ID); st == nil || !st.IsCompleted {
		t.Fatalf("embedded stage not updated: %+v", got.Stages)
	}
	// The sibling stage is untouched.
	if st := got.Stage(created.Stages[1].ID); st == nil || st.IsCompleted {
		t.Fatalf("sibling stage changed: %+v", st)
	}
}

func TestUpdateStageUnknownIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	created, err := store.Create(ctx, models.Project{
		Title:  "Launch",
		Stages: []models.ProjectStage{{Title: "Design"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = store.UpdateStage(ctx, created.ID, models.ProjectStage{ID: "missing", Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown stage: err = %v, want ErrNotFound", err)
	}
	_, err = store.UpdateStage(ctx, "missing", created.Stages[0])
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown project: err = %v, want ErrNotFound", err)
	}
}

func TestUpdatePreservesCreationTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	// Millisecond precision: BSON datetimes lose anything finer.
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	created, err := store.Create(ctx, models.Project{Title: "Launch", Created: createdAt})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Title = "Launch v2"
	created.Promoted = true
	created.Created = time.Time{}
	updated, err := store.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Promoted {
		t.Fatalf("promoted flag did not round-trip")
	}
	if !updated.Created.Equal(createdAt) {
		t.Fatalf("update changed the creation time: %v", updated.Created)
	}
}
