package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// ToolService defines use-case operations on catalog tools.
type ToolService interface {
	// ListActiveTools returns the tools visible in the general listing.
	ListActiveTools(ctx context.Context) ([]*domain.Tool, error)
	GetTool(ctx context.Context, id string) (*domain.Tool, error)
	// UpdateTool replaces every non-identifier field of the tool.
	UpdateTool(ctx context.Context, id string, updated *domain.Tool) error
	DeleteTool(ctx context.Context, id string) error
}
