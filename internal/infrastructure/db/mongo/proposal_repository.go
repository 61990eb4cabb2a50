package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

const collectionProposals = "proposals"

type ProposalRepository struct {
	col *mongo.Collection
}

func NewProposalRepository(db *mongo.Database) *ProposalRepository {
	return &ProposalRepository{col: db.Collection(collectionProposals)}
}

// Create inserts a new proposal document. The unique (client_id, tool_title)
// index turns a concurrent duplicate submission into domain.ErrProposalExists.
func (r *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) (*domain.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *proposal
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProposalExists
		}
		return nil, fmt.Errorf("insert proposal: %w", err)
	}
	return &created, nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id string) (*domain.Proposal, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProposalRepository) FindByClientAndToolTitle(ctx context.Context, clientID, title string) (*domain.Proposal, error) {
	return r.findOne(ctx, bson.M{"client_id": clientID, "tool_title": title})
}

func (r *ProposalRepository) FindAll(ctx context.Context) ([]*domain.Proposal, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ProposalRepository) FindAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Proposal, error) {
	return r.findMany(ctx, bson.M{"creation_date": bson.M{"$lt": cutoff}})
}

// FindAllCreatedBetween returns proposals with start < creation_date < end.
// Both bounds are exclusive.
func (r *ProposalRepository) FindAllCreatedBetween(ctx context.Context, start, end time.Time) ([]*domain.Proposal, error) {
	return r.findMany(ctx, bson.M{"creation_date": bson.M{"$gt": start, "$lt": end}})
}

// Remove atomically retrieves and deletes the proposal. FindOneAndDelete
// guarantees that of two concurrent removals exactly one sees the document;
// the other gets domain.ErrProposalNotFound.
func (r *ProposalRepository) Remove(ctx context.Context, id string) (*domain.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Proposal
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("remove proposal: %w", err)
	}
	return &p, nil
}

func (r *ProposalRepository) findOne(ctx context.Context, filter bson.M) (*domain.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Proposal
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("find proposal: %w", err)
	}
	return &p, nil
}

func (r *ProposalRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find proposals: %w", err)
	}
	defer cur.Close(ctx)

	var proposals []*domain.Proposal
	for cur.Next(ctx) {
		var p domain.Proposal
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode proposal: %w", err)
		}
		proposals = append(proposals, &p)
	}
	return proposals, cur.Err()
}

// EnsureIndexes creates the indexes backing proposal queries and the
// one-open-proposal-per-(client, tool title) rule.
func (r *ProposalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "tool_title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "creation_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
