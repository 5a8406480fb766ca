// internal/app/store/projects/store.go
package projects

import (
	"context"
	"errors"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no project (or stage) matches the given id.
var ErrNotFound = errors.New("project not found")

// Store manages the projects collection. Stages are embedded in the
// project document; there is no separate stages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new project Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// EnsureIndexes creates indexes for the project queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_projects_created"),
		},
		{
			Keys:    bson.D{{Key: "is_archived", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_projects_archived"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all projects, newest first.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Get returns the project with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.Project, error) {
	var p models.Project
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Create inserts a project, assigning ids to the project and any stages
// that arrived without one.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.Stages {
		if p.Stages[i].ID == "" {
			p.Stages[i].ID = uuid.NewString()
		}
	}
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	if p.CreatedAt == "" {
		p.CreatedAt = p.Created.Format("2006-01-02")
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update replaces the project with the matching id.
func (s *Store) Update(ctx context.Context, p models.Project) (models.Project, error) {
	current, err := s.Get(ctx, p.ID)
	if err != nil {
		return models.Project{}, err
	}
	for i := range p.Stages {
		if p.Stages[i].ID == "" {
			p.Stages[i].ID = uuid.NewString()
		}
	}
	p.Created = current.Created
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": p.ID}, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// UpdateStage replaces one embedded stage and returns the stored copy.
func (s *Store) UpdateStage(ctx context.Context, projectID string, stage models.ProjectStage) (models.ProjectStage, error) {
	filter := bson.M{"_id": projectID, "stages._id": stage.ID}
	update := bson.M{"$set": bson.M{"stages.$": stage}}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.ProjectStage{}, err
	}
	if res.MatchedCount == 0 {
		return models.ProjectStage{}, ErrNotFound
	}
	return stage, nil
}

// Delete removes the project with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
