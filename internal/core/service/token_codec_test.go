package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/toolvault/catalog-api/internal/core/domain"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func newTestCodec(t *testing.T, ttlMillis int64) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testSecret, ttlMillis)
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}
	return codec
}

func TestTokenCodec_IssueVerify_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, time.Hour.Milliseconds())
	client := &domain.Client{ID: "c1", Email: "alice@example.com"}

	token, err := codec.Issue(client)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, ok := codec.Verify(token)
	if !ok {
		t.Fatalf("expected freshly issued token to verify")
	}
	if subject != "alice@example.com" {
		t.Fatalf("expected subject %q, got %q", "alice@example.com", subject)
	}
}

func TestTokenCodec_Verify_Expired(t *testing.T) {
	codec := newTestCodec(t, time.Hour.Milliseconds())

	// Correctly signed token whose expiry is in the past.
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "bob@example.com",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(codec.key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := codec.Verify(expired); ok {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenCodec_Verify_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t, time.Hour.Milliseconds())
	token, err := codec.Issue(&domain.Client{Email: "carol@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, ok := codec.Verify(tampered); ok {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestTokenCodec_Verify_WrongKey(t *testing.T) {
	codec := newTestCodec(t, time.Hour.Milliseconds())

	otherSecret := base64.StdEncoding.EncodeToString([]byte("ffffffffffffffffffffffffffffffff"))
	other, err := NewTokenCodec(otherSecret, time.Hour.Milliseconds())
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}

	token, err := other.Issue(&domain.Client{Email: "dave@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, ok := codec.Verify(token); ok {
		t.Fatalf("expected token signed with another key to be rejected")
	}
}

func TestTokenCodec_Verify_Garbage(t *testing.T) {
	codec := newTestCodec(t, time.Hour.Milliseconds())
	if _, ok := codec.Verify("not-a-token"); ok {
		t.Fatalf("expected garbage input to be rejected")
	}
	if _, ok := codec.Verify(""); ok {
		t.Fatalf("expected empty input to be rejected")
	}
}

func TestNewTokenCodec_BadSecret(t *testing.T) {
	if _, err := NewTokenCodec("%%%not-base64%%%", time.Hour.Milliseconds()); err == nil {
		t.Fatalf("expected error for non-base64 secret")
	}
	if _, err := NewTokenCodec("", time.Hour.Milliseconds()); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
