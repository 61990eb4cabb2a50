package handler

import (
	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

func toProposalResponse(p *domain.Proposal) proposalResponse {
	return proposalResponse{
		ID:           p.ID,
		ToolID:       p.ToolID,
		ToolTitle:    p.ToolTitle,
		ClientID:     p.ClientID,
		CreationDate: p.CreationDate,
	}
}

func toProposalResponses(proposals []*domain.Proposal) []proposalResponse {
	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	return out
}

func toCreateProposalInput(req createProposalRequest) ports.CreateProposalInput {
	steps := make([]ports.StepInput, 0, len(req.Steps))
	for _, s := range req.Steps {
		steps = append(steps, ports.StepInput{Order: s.Order, Description: s.Description})
	}
	return ports.CreateProposalInput{
		Title:       req.Title,
		DomainType:  req.DomainType,
		Description: req.Description,
		Link:        req.Link,
		Steps:       steps,
	}
}
