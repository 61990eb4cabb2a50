package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// identityKey is where the authenticated client lives in the echo context.
// The slot is request-scoped: echo allocates a fresh context per request,
// so concurrent requests can never observe each other's identity.
const identityKey = "identity"

// ClientFrom returns the authenticated client populated by Authenticate,
// or ok=false when the request carries no usable credential.
func ClientFrom(c echo.Context) (*domain.Client, bool) {
	client, ok := c.Get(identityKey).(*domain.Client)
	return client, ok && client != nil
}

// SetClient stores the authenticated client on the request context.
// Exported for tests and for upstream authentication mechanisms.
func SetClient(c echo.Context, client *domain.Client) {
	c.Set(identityKey, client)
}

// Authenticate extracts a bearer token, verifies it, resolves the subject to
// a known client, and populates the request's identity slot. It never
// rejects a request on its own: a missing, malformed, or invalid credential
// simply leaves the slot empty for RequireAuth to judge downstream, and an
// already-populated slot is never overwritten. Unexpected lookup failures
// are logged and the request proceeds unauthenticated.
func Authenticate(codec ports.TokenCodec, clients ports.ClientRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := ClientFrom(c); ok {
				return next(c)
			}

			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			subject, ok := codec.Verify(strings.TrimPrefix(header, bearerPrefix))
			if !ok {
				return next(c)
			}

			client, err := clients.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if !errors.Is(err, domain.ErrClientNotFound) {
					log.Error().Err(err).Str("path", c.Path()).Msg("identity resolution failed")
				}
				return next(c)
			}

			SetClient(c, client)
			return next(c)
		}
	}
}

