package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

type ToolHandler struct {
	toolService ports.ToolService
}

func NewToolHandler(toolService ports.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

type updateToolRequest struct {
	Title       string            `json:"title" validate:"required"`
	DomainType  string            `json:"domain_type" validate:"required"`
	Description string            `json:"description"`
	Link        string            `json:"link" validate:"omitempty,url"`
	Steps       []stepRequest     `json:"steps" validate:"dive"`
	Feedbacks   []domain.Feedback `json:"feedbacks"`
	Active      bool              `json:"active"`
}

// List returns every active tool in the catalog.
//
// @Summary      List active tools
// @Tags         tools
// @Produce      json
// @Success      200  {array}  domain.Tool
// @Router       /api/tools [get]
func (h *ToolHandler) List(c echo.Context) error {
	tools, err := h.toolService.ListActiveTools(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tools)
}

// Get returns a single tool by id.
//
// @Summary      Get a tool
// @Tags         tools
// @Produce      json
// @Param        toolId  path      string  true  "Tool ID"
// @Success      200     {object}  domain.Tool
// @Failure      404     {object}  map[string]string
// @Router       /api/tools/{toolId} [get]
func (h *ToolHandler) Get(c echo.Context) error {
	tool, err := h.toolService.GetTool(c.Request().Context(), c.Param("toolId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tool)
}

// Update replaces a tool's catalog entry.
//
// @Summary      Update a tool
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        toolId  path      string             true  "Tool ID"
// @Param        body    body      updateToolRequest  true  "Updated tool"
// @Success      200     {object}  domain.Tool
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/tools/{toolId} [put]
func (h *ToolHandler) Update(c echo.Context) error {
	var req updateToolRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	steps := make([]domain.Step, 0, len(req.Steps))
	for _, s := range req.Steps {
		steps = append(steps, domain.Step{Order: s.Order, Description: s.Description})
	}

	updated := &domain.Tool{
		Title:       req.Title,
		DomainType:  domain.DomainType(req.DomainType),
		Description: req.Description,
		Link:        req.Link,
		Steps:       steps,
		Feedbacks:   req.Feedbacks,
		Active:      req.Active,
	}

	if err := h.toolService.UpdateTool(c.Request().Context(), c.Param("toolId"), updated); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a tool from the catalog.
//
// @Summary      Delete a tool
// @Tags         tools
// @Produce      json
// @Param        toolId  path      string  true  "Tool ID"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  map[string]string
// @Router       /api/tools/{toolId} [delete]
func (h *ToolHandler) Delete(c echo.Context) error {
	id := c.Param("toolId")
	if err := h.toolService.DeleteTool(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Tool deleted successfully."})
}
