// internal/app/store/noteschecks/store.go
package noteschecks

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

// ErrNotFound is returned when no note matches the given id.
var ErrNotFound = errors.New("note not found")

// Store manages the notes/checklists collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new notes Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notes_checks")}
}

// EnsureIndexes creates indexes for the notes queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_notes_created"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_notes_user"),
		},
		{
			Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_notes_published"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all notes and checklists, newest first.
func (s *Store) List(ctx context.Context) ([]models.NoteCheck, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notes := []models.NoteCheck{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Create inserts a note, assigning ids to the note and any check items
// that arrived without one.
func (s *Store) Create(ctx context.Context, n models.NoteCheck) (models.NoteCheck, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	for i := range n.Items {
		if n.Items[i].ID == "" {
			n.Items[i].ID = uuid.NewString()
		}
	}
	if n.Created.IsZero() {
		n.Created = time.Now().UTC()
	}
	if n.CreatedAt == "" {
		n.CreatedAt = n.Created.Format("2006-01-02")
	}
	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.NoteCheck{}, err
	}
	return n, nil
}

// Update replaces the note with the matching id.
func (s *Store) Update(ctx context.Context, n models.NoteCheck) (models.NoteCheck, error) {
	var current models.NoteCheck
	if err := s.c.FindOne(ctx, bson.M{"_id": n.ID}).Decode(&current); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.NoteCheck{}, ErrNotFound
		}
		return models.NoteCheck{}, err
	}
	for i := range n.Items {
		if n.Items[i].ID == "" {
			n.Items[i].ID = uuid.NewString()
		}
	}
	n.Created = current.Created
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": n.ID}, n); err != nil {
		return models.NoteCheck{}, err
	}
	return n, nil
}

// Delete removes the note with the given id.
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
