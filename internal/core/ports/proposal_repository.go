package ports

import (
	"context"
	"time"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// ProposalRepository defines persistence operations for proposals.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) (*domain.Proposal, error)
	FindByID(ctx context.Context, id string) (*domain.Proposal, error)
	// FindByClientAndToolTitle locates the open proposal a client has for a
	// tool title, enforcing the one-open-proposal-per-(client,title) rule.
	FindByClientAndToolTitle(ctx context.Context, clientID, title string) (*domain.Proposal, error)
	FindAll(ctx context.Context) ([]*domain.Proposal, error)
	FindAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Proposal, error)
	FindAllCreatedBetween(ctx context.Context, start, end time.Time) ([]*domain.Proposal, error)
	// Remove atomically retrieves and deletes the proposal with the given id.
	// Exactly one of two concurrent Remove calls for the same id succeeds;
	// the other gets domain.ErrProposalNotFound. Terminal lifecycle
	// transitions are built on this contract.
	Remove(ctx context.Context, id string) (*domain.Proposal, error)
}
