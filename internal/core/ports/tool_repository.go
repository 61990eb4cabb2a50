package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// ToolRepository defines persistence operations for catalog tools.
type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) (*domain.Tool, error)
	FindByID(ctx context.Context, id string) (*domain.Tool, error)
	FindByTitle(ctx context.Context, title string) (*domain.Tool, error)
	// FindAllActive returns only tools visible in the general listing.
	FindAllActive(ctx context.Context) ([]*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
}
