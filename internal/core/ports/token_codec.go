package ports

import "github.com/toolvault/catalog-api/internal/core/domain"

// TokenCodec issues and verifies signed, time-bounded identity tokens.
// Tokens are never stored; validity is recomputed on every use.
type TokenCodec interface {
	// Issue returns a signed token whose subject is the client's email.
	Issue(client *domain.Client) (string, error)
	// Verify decodes the token and checks signature and expiry. It fails
	// closed: any decode error, signature mismatch, or past expiry yields
	// ok=false rather than an error.
	Verify(token string) (subject string, ok bool)
	// Lifetime reports the configured token validity window.
	Lifetime() int64
}
