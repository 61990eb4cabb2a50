package ports

import (
	"context"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// StepInput is one ordered instruction in a proposal payload.
type StepInput struct {
	Order       int
	Description string
}

// CreateProposalInput carries all data needed to propose a new tool.
type CreateProposalInput struct {
	Title       string
	DomainType  string
	Description string
	Link        string
	Steps       []StepInput
}

// ProposalService drives a proposal through its lifecycle: submitted on
// creation, then accepted, refused, or expired. Terminal outcomes delete
// the proposal record; the absence of the record is the terminal state.
type ProposalService interface {
	ListProposals(ctx context.Context) ([]*domain.Proposal, error)
	GetProposal(ctx context.Context, id string) (*domain.Proposal, error)
	// CreateProposal builds an inactive tool owned by the proposal and
	// notifies every administrator. The actor is the authenticated client
	// submitting the proposal.
	CreateProposal(ctx context.Context, input CreateProposalInput, actor *domain.Client) (*domain.Proposal, error)
	// AcceptProposal activates the candidate tool, notifies the submitting
	// client, and deletes the proposal. The tool survives in the catalog.
	AcceptProposal(ctx context.Context, id string) error
	// RefuseProposal destroys the candidate tool, notifies the submitting
	// client, and deletes the proposal.
	RefuseProposal(ctx context.Context, id string) error
	// PurgeExpired removes every proposal older than 30 days together with
	// its tool, notifying each affected client. Scheduler-invoked; runs
	// without an authenticated identity.
	PurgeExpired(ctx context.Context) error
	// RemindPending notifies administrators about proposals aged between 7
	// and 30 days. Does not mutate proposal state. Scheduler-invoked.
	RemindPending(ctx context.Context) error
}
