// internal/app/store/assets/store.go
package assets

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

// ErrNotFound is returned when no asset matches the given id.
var ErrNotFound = errors.New("asset not found")

// Store manages the assets collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new asset Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assets")}
}

// EnsureIndexes creates indexes for the asset queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_assets_created"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_assets_category"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all assets, newest first.
func (s *Store) List(ctx context.Context) ([]models.Asset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	assets := []models.Asset{}
	if err := cur.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// Create inserts an asset, assigning id and creation time.
func (s *Store) Create(ctx context.Context, a models.Asset) (models.Asset, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Created.IsZero() {
		a.Created = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Asset{}, err
	}
	return a, nil
}

// Update replaces the asset with the matching id.
func (s *Store) Update(ctx context.Context, a models.Asset) (models.Asset, error) {
	var current models.Asset
	if err := s.c.FindOne(ctx, bson.M{"_id": a.ID}).Decode(&current); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Asset{}, ErrNotFound
		}
		return models.Asset{}, err
	}
	a.Created = current.Created
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": a.ID}, a); err != nil {
		return models.Asset{}, err
	}
	return a, nil
}

// Delete removes the asset with the given id.
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
