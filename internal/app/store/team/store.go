// internal/app/store/team/store.go
package team

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

// ErrNotFound is returned when no member matches the given id.
var ErrNotFound = errors.New("member not found")

// ErrNoMatch is returned by Authenticate when no member matches the
// presented credentials.
var ErrNoMatch = errors.New("no member matches credentials")

// Store manages the team roster collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new team Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("team_members")}
}

// EnsureIndexes creates indexes for roster lookups.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_team_name"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all members in insertion order.
func (s *Store) List(ctx context.Context) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []models.TeamMember{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Get returns the member with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.TeamMember, error) {
	var m models.TeamMember
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TeamMember{}, ErrNotFound
	}
	if err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// Create inserts a member, assigning id and creation time.
func (s *Store) Create(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Created.IsZero() {
		m.Created = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// Update replaces the member with the matching id. An empty password in
// the update keeps the stored one, so editing a profile does not force a
// password reset.
func (s *Store) Update(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	current, err := s.Get(ctx, m.ID)
	if err != nil {
		return models.TeamMember{}, err
	}
	if m.Password == "" {
		m.Password = current.Password
	}
	m.Created = current.Created
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": m.ID}, m); err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// Delete removes the member with the given id.
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

// Authenticate finds the member with the given display name and password.
// Credentials are compared exactly; the roster model stores them as typed.
func (s *Store) Authenticate(ctx context.Context, name, password string) (models.TeamMember, error) {
	var m models.TeamMember
	err := s.c.FindOne(ctx, bson.M{"name": name, "password": password}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TeamMember{}, ErrNoMatch
	}
	if err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}
