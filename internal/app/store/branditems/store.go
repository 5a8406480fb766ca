// internal/app/store/branditems/store.go
package branditems

import (
	"context"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the brand kit collection. Brand items are append-only:
// the kit is curated by adding entries, never edited in place.
type Store struct {
	c *mongo.Collection
}

// New creates a new brand item Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("brand_items")}
}

// EnsureIndexes creates indexes for the brand kit queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_brand_type"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all brand items in insertion order.
func (s *Store) List(ctx context.Context) ([]models.BrandItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.BrandItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a brand item, assigning id and creation time.
func (s *Store) Create(ctx context.Context, b models.BrandItem) (models.BrandItem, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Created.IsZero() {
		b.Created = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.BrandItem{}, err
	}
	return b, nil
}
