package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

// ToolService implements use-case operations on catalog tools.
type ToolService struct {
	tools ports.ToolRepository
	log   zerolog.Logger
}

func NewToolService(tools ports.ToolRepository, log zerolog.Logger) *ToolService {
	return &ToolService{tools: tools, log: log}
}

func (s *ToolService) ListActiveTools(ctx context.Context) ([]*domain.Tool, error) {
	return s.tools.FindAllActive(ctx)
}

func (s *ToolService) GetTool(ctx context.Context, id string) (*domain.Tool, error) {
	return s.tools.FindByID(ctx, id)
}

// UpdateTool replaces every field of the stored tool except its id.
func (s *ToolService) UpdateTool(ctx context.Context, id string, updated *domain.Tool) error {
	existing, err := s.tools.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated.ID = existing.ID
	if err := s.tools.Update(ctx, updated); err != nil {
		return err
	}

	s.log.Info().Str("tool_id", id).Msg("tool updated")
	return nil
}

func (s *ToolService) DeleteTool(ctx context.Context, id string) error {
	if _, err := s.tools.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.tools.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("tool_id", id).Msg("tool deleted")
	return nil
}
