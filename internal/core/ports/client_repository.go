package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// ClientRepository defines the interface for client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindAllByRole(ctx context.Context, role string) ([]*domain.Client, error)
}
