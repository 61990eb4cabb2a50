package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toolvault/catalog-api/internal/core/ports"
)

type ProposalHandler struct {
	proposalService ports.ProposalService
}

func NewProposalHandler(proposalService ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

// List returns every pending proposal.
//
// @Summary      List pending proposals
// @Tags         proposals
// @Produce      json
// @Success      200  {array}  proposalResponse
// @Router       /api/proposals/all [get]
func (h *ProposalHandler) List(c echo.Context) error {
	proposals, err := h.proposalService.ListProposals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProposalResponses(proposals))
}

// Get returns a single pending proposal by id.
//
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        proposalId  path      string  true  "Proposal ID"
// @Success      200         {object}  proposalResponse
// @Failure      404         {object}  map[string]string
// @Router       /api/proposals/{proposalId} [get]
func (h *ProposalHandler) Get(c echo.Context) error {
	proposal, err := h.proposalService.GetProposal(c.Request().Context(), c.Param("proposalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProposalResponse(proposal))
}

// Create submits a new tool proposal on behalf of the authenticated client.
//
// @Summary      Submit a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body  body      createProposalRequest  true  "Proposed tool"
// @Success      201   {object}  proposalResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/proposals/create [post]
func (h *ProposalHandler) Create(c echo.Context) error {
	actor, err := currentClient(c)
	if err != nil {
		return err
	}

	var req createProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	proposal, err := h.proposalService.CreateProposal(c.Request().Context(), toCreateProposalInput(req), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProposalResponse(proposal))
}

// Accept approves a proposal, activating its tool.
//
// @Summary      Accept a proposal
// @Tags         proposals
// @Produce      json
// @Param        proposalId  path      string  true  "Proposal ID"
// @Success      200         {object}  messageResponse
// @Failure      404         {object}  map[string]string
// @Router       /api/proposals/{proposalId}/accept [patch]
func (h *ProposalHandler) Accept(c echo.Context) error {
	if err := h.proposalService.AcceptProposal(c.Request().Context(), c.Param("proposalId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Proposal accepted successfully."})
}

// Refuse rejects a proposal, discarding its tool.
//
// @Summary      Refuse a proposal
// @Tags         proposals
// @Produce      json
// @Param        proposalId  path      string  true  "Proposal ID"
// @Success      200         {object}  messageResponse
// @Failure      404         {object}  map[string]string
// @Router       /api/proposals/{proposalId}/refuse [patch]
func (h *ProposalHandler) Refuse(c echo.Context) error {
	if err := h.proposalService.RefuseProposal(c.Request().Context(), c.Param("proposalId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Proposal refused successfully."})
}
