package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

// TokenCodec issues and verifies HMAC-SHA256 signed JWTs. The subject claim
// carries the client's email; issued-at and expiry bound the validity
// window. Validation uses the local system clock, so heavily skewed peers
// may see fresh tokens as expired.
type TokenCodec struct {
	key []byte
	ttl time.Duration
}

// NewTokenCodec builds a codec from a base64-encoded signing secret and a
// token lifetime in milliseconds.
func NewTokenCodec(secret string, ttlMillis int64) (*TokenCodec, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("token codec: decode secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("token codec: empty signing secret")
	}
	if ttlMillis <= 0 {
		ttlMillis = (24 * time.Hour).Milliseconds()
	}
	return &TokenCodec{key: key, ttl: time.Duration(ttlMillis) * time.Millisecond}, nil
}

// Issue signs a token for the client with subject=email.
func (c *TokenCodec) Issue(client *domain.Client) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   client.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.key)
}

// Verify decodes the token and checks signature integrity and expiry.
// It fails closed: any parse error, algorithm mismatch, bad signature, or
// past expiry yields ok=false. It never returns an error so the caller can
// treat every failure as "no credential".
func (c *TokenCodec) Verify(token string) (subject string, ok bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.key, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// Lifetime returns the configured token lifetime in milliseconds.
func (c *TokenCodec) Lifetime() int64 {
	return c.ttl.Milliseconds()
}
