// internal/app/store/agenda/store.go
package agenda

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

// ErrNotFound is returned when no agenda item matches the given id.
var ErrNotFound = errors.New("agenda item not found")

// Store manages the personal agenda collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new agenda Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("agenda_items")}
}

// EnsureIndexes creates indexes for the agenda queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_agenda_created"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("idx_agenda_user_date"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_agenda_date"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all agenda items, newest first.
func (s *Store) List(ctx context.Context) ([]models.AgendaItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.AgendaItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts an agenda item, assigning id and creation time.
func (s *Store) Create(ctx context.Context, a models.AgendaItem) (models.AgendaItem, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Created.IsZero() {
		a.Created = time.Now().UTC()
	}
	if a.CreatedAt == "" {
		a.CreatedAt = a.Created.Format("2006-01-02")
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.AgendaItem{}, err
	}
	return a, nil
}

// Update replaces the agenda item with the matching id.
func (s *Store) Update(ctx context.Context, a models.AgendaItem) (models.AgendaItem, error) {
	var current models.AgendaItem
	if err := s.c.FindOne(ctx, bson.M{"_id": a.ID}).Decode(&current); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.AgendaItem{}, ErrNotFound
		}
		return models.AgendaItem{}, err
	}
	a.Created = current.Created
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": a.ID}, a); err != nil {
		return models.AgendaItem{}, err
	}
	return a, nil
}

// Delete removes the agenda item with the given id.
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
