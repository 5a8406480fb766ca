// internal/app/store/proposals/store.go
package proposals

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

// ErrNotFound is returned when no proposal (or response) matches the id.
var ErrNotFound = errors.New("proposal not found")

// Store manages the meeting proposals collection. Responses are embedded
// in the proposal document so a list fetch returns them in one read.
type Store struct {
	c *mongo.Collection
}

// New creates a new proposal Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("proposals")}
}

// EnsureIndexes creates indexes for the proposal queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_proposals_created"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_proposals_date"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all proposals, newest first.
func (s *Store) List(ctx context.Context) ([]models.Proposal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	proposals := []models.Proposal{}
	if err := cur.All(ctx, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// Create inserts a proposal, assigning id and creation time. Responses
// always start empty; voting happens through Respond.
func (s *Store) Create(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Responses = []models.ProposalResponse{}
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Proposal{}, err
	}
	return p, nil
}

// Delete removes the proposal with the given id, responses included.
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

// Respond records one member's answer, updating in place if the member
// already answered. At most one response exists per (proposal, user).
func (s *Store) Respond(ctx context.Context, proposalID string, r models.ProposalResponse) (models.ProposalResponse, error) {
	r.ProposalID = proposalID

	// First try to update an existing response from this user.
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": proposalID, "responses.user_id": r.UserID},
		bson.M{"$set": bson.M{"responses.$.response": r.Response}},
	)
	if err != nil {
		return models.ProposalResponse{}, err
	}
	if res.MatchedCount > 0 {
		var p models.Proposal
		if err := s.c.FindOne(ctx, bson.M{"_id": proposalID}).Decode(&p); err != nil {
			return models.ProposalResponse{}, err
		}
		if existing := p.ResponseBy(r.UserID); existing != nil {
			return *existing, nil
		}
		return models.ProposalResponse{}, ErrNotFound
	}

	// No prior response: append one.
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	res, err = s.c.UpdateOne(ctx,
		bson.M{"_id": proposalID},
		bson.M{"$push": bson.M{"responses": r}},
	)
	if err != nil {
		return models.ProposalResponse{}, err
	}
	if res.MatchedCount == 0 {
		return models.ProposalResponse{}, ErrNotFound
	}
	return r, nil
}

// DeleteResponse removes one response by its id.
func (s *Store) DeleteResponse(ctx context.Context, proposalID, responseID string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": proposalID},
		bson.M{"$pull": bson.M{"responses": bson.M{"_id": responseID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 || res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}
