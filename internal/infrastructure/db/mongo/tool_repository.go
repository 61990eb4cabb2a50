package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

const collectionTools = "tools"

type ToolRepository struct {
	col *mongo.Collection
}

func NewToolRepository(db *mongo.Database) *ToolRepository {
	return &ToolRepository{col: db.Collection(collectionTools)}
}

// Create inserts a new tool document and returns it with its generated id.
func (r *ToolRepository) Create(ctx context.Context, tool *domain.Tool) (*domain.Tool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *tool
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert tool: %w", err)
	}
	return &created, nil
}

func (r *ToolRepository) FindByID(ctx context.Context, id string) (*domain.Tool, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ToolRepository) FindByTitle(ctx context.Context, title string) (*domain.Tool, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

// FindAllActive returns catalog tools visible in the general listing.
// Candidate tools held by pending proposals stay inactive and hidden.
func (r *ToolRepository) FindAllActive(ctx context.Context) ([]*domain.Tool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("find active tools: %w", err)
	}
	defer cur.Close(ctx)

	var tools []*domain.Tool
	for cur.Next(ctx) {
		var t domain.Tool
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode tool: %w", err)
		}
		tools = append(tools, &t)
	}
	return tools, cur.Err()
}

// Update replaces the tool document identified by tool.ID.
func (r *ToolRepository) Update(ctx context.Context, tool *domain.Tool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": tool.ID}, tool)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrToolNotFound
	}
	return nil
}

func (r *ToolRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrToolNotFound
	}
	return nil
}

func (r *ToolRepository) findOne(ctx context.Context, filter bson.M) (*domain.Tool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tool
	if err := r.col.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrToolNotFound
		}
		return nil, fmt.Errorf("find tool: %w", err)
	}
	return &t, nil
}
