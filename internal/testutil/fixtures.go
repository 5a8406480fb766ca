package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for seeding test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateMember inserts a roster member and returns it.
func (f *Fixtures) CreateMember(ctx context.Context, name, role string) models.TeamMember {
	f.t.Helper()

	m := models.TeamMember{
		ID:       uuid.NewString(),
		Name:     name,
		Role:     role,
		Password: "secret-" + name,
		Created:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("team_members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("create test member: %v", err)
	}
	return m
}

// CreateProject inserts a project with the given stage titles and returns it.
func (f *Fixtures) CreateProject(ctx context.Context, title string, stageTitles ...string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now.Format("2006-01-02"),
		Stages:    make([]models.ProjectStage, 0, len(stageTitles)),
		Created:   now,
	}
	for _, st := range stageTitles {
		p.Stages = append(p.Stages, models.ProjectStage{
			ID:    uuid.NewString(),
			Title: st,
		})
	}
	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create test project: %v", err)
	}
	return p
}

// CreateProposal inserts a proposal owned by the given member and returns it.
func (f *Fixtures) CreateProposal(ctx context.Context, owner models.TeamMember, title string) models.Proposal {
	f.t.Helper()

	p := models.Proposal{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  "reunion",
		Date:      "2026-09-01",
		Time:      "10:00",
		UserID:    owner.ID,
		UserName:  owner.Name,
		Responses: []models.ProposalResponse{},
		Created:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("proposals").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create test proposal: %v", err)
	}
	return p
}
