package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toolvault/catalog-api/internal/api/middleware"
	"github.com/toolvault/catalog-api/internal/core/domain"
)

// currentClient extracts the identity populated by the Authenticate
// middleware. Handlers behind RequireAuth should never see the 401 branch,
// but misordered route wiring must fail loudly rather than act on a nil
// identity.
func currentClient(c echo.Context) (*domain.Client, error) {
	client, ok := middleware.ClientFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return client, nil
}
