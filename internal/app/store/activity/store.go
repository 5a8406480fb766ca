// internal/app/store/activity/store.go
package activity

import (
	"context"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the user-facing activity feed. Entries are append-only;
// there is no update or delete path.
type Store struct {
	c *mongo.Collection
}

// New creates a new activity Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("activity_logs")}
}

// EnsureIndexes creates indexes for the feed queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_activity_created"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_activity_user"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all log entries, newest first.
func (s *Store) List(ctx context.Context) ([]models.ActivityLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	logs := []models.ActivityLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Create appends a log entry, assigning id and creation time.
func (s *Store) Create(ctx context.Context, l models.ActivityLog) (models.ActivityLog, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Created.IsZero() {
		l.Created = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.ActivityLog{}, err
	}
	return l, nil
}

// CountByUser returns how many entries a member has emitted.
func (s *Store) CountByUser(ctx context.Context, userID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"user_id": userID})
}
