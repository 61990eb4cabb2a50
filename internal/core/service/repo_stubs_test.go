package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Client
	seq  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Email == client.Email {
			return nil, domain.ErrClientExists
		}
	}
	clone := *client
	r.seq++
	clone.ID = fmt.Sprintf("client_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) FindAllByRole(_ context.Context, role string) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Client
	for _, c := range r.byID {
		if c.Role == role {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// seed inserts a client with a fixed id, bypassing Create.
func (r *stubClientRepo) seed(c *domain.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *c
	r.byID[clone.ID] = &clone
}

type stubToolRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Tool
	seq  int
}

func newStubToolRepo() *stubToolRepo {
	return &stubToolRepo{byID: make(map[string]*domain.Tool)}
}

func (r *stubToolRepo) Create(_ context.Context, tool *domain.Tool) (*domain.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *tool
	r.seq++
	clone.ID = fmt.Sprintf("tool_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubToolRepo) FindByID(_ context.Context, id string) (*domain.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrToolNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubToolRepo) FindByTitle(_ context.Context, title string) (*domain.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if t.Title == title {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrToolNotFound
}

func (r *stubToolRepo) FindAllActive(_ context.Context) ([]*domain.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Tool
	for _, t := range r.byID {
		if t.Active {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubToolRepo) Update(_ context.Context, tool *domain.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[tool.ID]; !ok {
		return domain.ErrToolNotFound
	}
	clone := *tool
	r.byID[clone.ID] = &clone
	return nil
}

func (r *stubToolRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrToolNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubProposalRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Proposal
	seq  int
}

func newStubProposalRepo() *stubProposalRepo {
	return &stubProposalRepo{byID: make(map[string]*domain.Proposal)}
}

func (r *stubProposalRepo) Create(_ context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.ClientID == p.ClientID && existing.ToolTitle == p.ToolTitle {
			return nil, domain.ErrProposalExists
		}
	}
	clone := *p
	r.seq++
	clone.ID = fmt.Sprintf("proposal_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProposalRepo) FindByID(_ context.Context, id string) (*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProposalRepo) FindByClientAndToolTitle(_ context.Context, clientID, title string) (*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byID {
		if p.ClientID == clientID && p.ToolTitle == title {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProposalNotFound
}

func (r *stubProposalRepo) FindAll(_ context.Context) ([]*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Proposal, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProposalRepo) FindAllCreatedBefore(_ context.Context, cutoff time.Time) ([]*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Proposal
	for _, p := range r.byID {
		if p.CreationDate.Before(cutoff) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProposalRepo) FindAllCreatedBetween(_ context.Context, start, end time.Time) ([]*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Proposal
	for _, p := range r.byID {
		if p.CreationDate.After(start) && p.CreationDate.Before(end) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Remove mirrors the atomic FindOneAndDelete contract of the Mongo repo:
// the lock makes lookup and deletion a single step, so concurrent callers
// see exactly one success.
func (r *stubProposalRepo) Remove(_ context.Context, id string) (*domain.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	delete(r.byID, id)
	clone := *p
	return &clone, nil
}

type stubNotificationRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Notification
	seq  int
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{byID: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *n
	r.seq++
	clone.ID = fmt.Sprintf("notification_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) FindAllByClient(_ context.Context, clientID string) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.byID {
		if n.ClientID == clientID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) Save(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[n.ID]; !ok {
		return domain.ErrNotificationNotFound
	}
	clone := *n
	r.byID[clone.ID] = &clone
	return nil
}

// countByType tallies notifications of one type recorded for a client.
func (r *stubNotificationRepo) countByType(clientID string, t domain.NotificationType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.byID {
		if n.ClientID == clientID && n.Type == t {
			count++
		}
	}
	return count
}
