package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/toolvault/catalog-api/internal/api/metrics"
	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

const (
	// proposalTTLDays is how long a proposal may stay unprocessed before the
	// nightly purge removes it.
	proposalTTLDays = 30
	// reminderAfterDays is the age at which administrators start receiving
	// reminders about a pending proposal.
	reminderAfterDays = 7
)

// ProposalService drives proposals through their lifecycle. Terminal
// transitions (accept, refuse, expire) start by atomically claiming the
// proposal record via ProposalRepository.Remove, so two concurrent calls on
// the same id resolve to exactly one winner; the loser observes NotFound.
type ProposalService struct {
	proposals     ports.ProposalRepository
	tools         ports.ToolRepository
	clients       ports.ClientRepository
	notifications ports.NotificationService
	log           zerolog.Logger
}

func NewProposalService(
	proposals ports.ProposalRepository,
	tools ports.ToolRepository,
	clients ports.ClientRepository,
	notifications ports.NotificationService,
	log zerolog.Logger,
) *ProposalService {
	return &ProposalService{
		proposals:     proposals,
		tools:         tools,
		clients:       clients,
		notifications: notifications,
		log:           log,
	}
}

func (s *ProposalService) ListProposals(ctx context.Context) ([]*domain.Proposal, error) {
	return s.proposals.FindAll(ctx)
}

func (s *ProposalService) GetProposal(ctx context.Context, id string) (*domain.Proposal, error) {
	return s.proposals.FindByID(ctx, id)
}

// CreateProposal persists an inactive candidate tool plus the proposal
// owning it, then fans out a new-proposal notification to administrators.
// A client may hold at most one open proposal per tool title.
func (s *ProposalService) CreateProposal(ctx context.Context, input ports.CreateProposalInput, actor *domain.Client) (*domain.Proposal, error) {
	existing, err := s.proposals.FindByClientAndToolTitle(ctx, actor.ID, input.Title)
	if err != nil && !errors.Is(err, domain.ErrProposalNotFound) {
		return nil, fmt.Errorf("create proposal: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrProposalExists
	}

	steps := make([]domain.Step, 0, len(input.Steps))
	for _, st := range input.Steps {
		steps = append(steps, domain.Step{Order: st.Order, Description: st.Description})
	}

	tool, err := s.tools.Create(ctx, &domain.Tool{
		Title:       input.Title,
		DomainType:  domain.DomainType(input.DomainType),
		Description: input.Description,
		Link:        input.Link,
		Steps:       steps,
		Feedbacks:   nil,
		Active:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("create proposal: create tool: %w", err)
	}

	proposal, err := s.proposals.Create(ctx, &domain.Proposal{
		ToolID:       tool.ID,
		ToolTitle:    tool.Title,
		ClientID:     actor.ID,
		CreationDate: time.Now().UTC(),
	})
	if err != nil {
		// The unique (client_id, tool_title) index lost a race: drop the
		// orphaned candidate tool before reporting the duplicate.
		if errors.Is(err, domain.ErrProposalExists) {
			if delErr := s.tools.Delete(ctx, tool.ID); delErr != nil {
				s.log.Warn().Err(delErr).Str("tool_id", tool.ID).Msg("failed to delete orphaned candidate tool")
			}
			return nil, domain.ErrProposalExists
		}
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	message := fmt.Sprintf("New proposal for Tool '%s' created by Client ID '%s'.", tool.Title, actor.ID)
	if err := s.notifications.NotifyAdmins(ctx, message, domain.NotificationNewProposal); err != nil {
		s.log.Warn().Err(err).Str("proposal_id", proposal.ID).Msg("failed to notify admins of new proposal")
	}

	metrics.ProposalsCreatedTotal.Inc()
	s.log.Info().
		Str("proposal_id", proposal.ID).
		Str("tool_title", tool.Title).
		Str("client_id", actor.ID).
		Msg("proposal created")

	return proposal, nil
}

// AcceptProposal activates the candidate tool, notifies the submitting
// client, and deletes the proposal record. Ownership of the tool transfers
// to the catalog.
func (s *ProposalService) AcceptProposal(ctx context.Context, id string) error {
	proposal, err := s.proposals.Remove(ctx, id)
	if err != nil {
		return err
	}

	tool, err := s.tools.FindByID(ctx, proposal.ToolID)
	if err != nil {
		return fmt.Errorf("accept proposal %s: %w", id, err)
	}
	tool.Active = true
	if err := s.tools.Update(ctx, tool); err != nil {
		return fmt.Errorf("accept proposal %s: activate tool: %w", id, err)
	}

	if err := s.notifyClient(ctx, proposal, domain.NotificationAccepted, "accepted"); err != nil {
		return fmt.Errorf("accept proposal %s: %w", id, err)
	}

	metrics.ProposalsResolvedTotal.WithLabelValues("accepted").Inc()
	s.log.Info().Str("proposal_id", id).Str("tool_id", tool.ID).Msg("proposal accepted")
	return nil
}

// RefuseProposal destroys the candidate tool, notifies the submitting
// client, and deletes the proposal record.
func (s *ProposalService) RefuseProposal(ctx context.Context, id string) error {
	proposal, err := s.proposals.Remove(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tools.Delete(ctx, proposal.ToolID); err != nil {
		return fmt.Errorf("refuse proposal %s: delete tool: %w", id, err)
	}

	if err := s.notifyClient(ctx, proposal, domain.NotificationRefused, "refused"); err != nil {
		return fmt.Errorf("refuse proposal %s: %w", id, err)
	}

	metrics.ProposalsResolvedTotal.WithLabelValues("refused").Inc()
	s.log.Info().Str("proposal_id", id).Msg("proposal refused")
	return nil
}

// PurgeExpired removes every proposal older than proposalTTLDays along with
// its candidate tool, notifying each affected client. Safe to run with zero
// matches. Per-proposal failures are logged and do not stop the sweep.
func (s *ProposalService) PurgeExpired(ctx context.Context) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -proposalTTLDays)
	expired, err := s.proposals.FindAllCreatedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge expired: %w", err)
	}

	for _, candidate := range expired {
		proposal, err := s.proposals.Remove(ctx, candidate.ID)
		if err != nil {
			// Already claimed by a concurrent run or an admin decision.
			if errors.Is(err, domain.ErrProposalNotFound) {
				continue
			}
			s.log.Error().Err(err).Str("proposal_id", candidate.ID).Msg("failed to remove expired proposal")
			continue
		}

		if err := s.notifyClient(ctx, proposal, domain.NotificationExpired,
			"deleted after 30 days without being processed"); err != nil {
			s.log.Warn().Err(err).Str("proposal_id", proposal.ID).Msg("failed to notify client of expired proposal")
		}

		if err := s.tools.Delete(ctx, proposal.ToolID); err != nil {
			s.log.Warn().Err(err).Str("tool_id", proposal.ToolID).Msg("failed to delete tool of expired proposal")
		}

		metrics.ProposalsResolvedTotal.WithLabelValues("expired").Inc()
		s.log.Info().Str("proposal_id", proposal.ID).Msg("expired proposal purged")
	}

	return nil
}

// RemindPending notifies administrators about proposals aged between
// reminderAfterDays and proposalTTLDays. Proposal state is untouched.
func (s *ProposalService) RemindPending(ctx context.Context) error {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -proposalTTLDays)
	end := now.AddDate(0, 0, -reminderAfterDays)

	pending, err := s.proposals.FindAllCreatedBetween(ctx, start, end)
	if err != nil {
		return fmt.Errorf("remind pending: %w", err)
	}

	for _, proposal := range pending {
		remaining := proposalTTLDays - calendarDaysBetween(proposal.CreationDate, now)
		message := fmt.Sprintf(
			"Proposal for Tool '%s' by Client ID '%s' is pending with %d days left before deletion.",
			proposal.ToolTitle, proposal.ClientID, remaining,
		)
		if err := s.notifications.NotifyAdmins(ctx, message, domain.NotificationReminder); err != nil {
			s.log.Warn().Err(err).Str("proposal_id", proposal.ID).Msg("failed to send proposal reminder")
		}
	}

	return nil
}

func (s *ProposalService) notifyClient(ctx context.Context, proposal *domain.Proposal, t domain.NotificationType, action string) error {
	client, err := s.clients.FindByID(ctx, proposal.ClientID)
	if err != nil {
		return fmt.Errorf("resolve client %s: %w", proposal.ClientID, err)
	}
	message := fmt.Sprintf("Your proposal for Tool '%s' has been %s.", proposal.ToolTitle, action)
	return s.notifications.Notify(ctx, message, client, t)
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time of day. Reminders report 30 minus this age: a proposal at the 7-day
// boundary reports 23 days left.
func calendarDaysBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
