package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// RegisterClientInput carries the data needed to create a client account.
type RegisterClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterClientInput) (*domain.Client, error)
	// Login authenticates by email and password and returns a signed token
	// alongside the client. Failures never reveal which credential was wrong.
	Login(ctx context.Context, email, password string) (string, *domain.Client, error)
}
