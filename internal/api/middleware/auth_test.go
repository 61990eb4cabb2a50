package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/service"
)

type stubClientRepo struct {
	byEmail map[string]*domain.Client
	err     error
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, _ string) (*domain.Client, error) {
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindAllByRole(_ context.Context, _ string) ([]*domain.Client, error) {
	return nil, nil
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	return c, nil
}

func newTestCodec(t *testing.T) *service.TokenCodec {
	t.Helper()
	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	codec, err := service.NewTokenCodec(secret, time.Hour.Milliseconds())
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}
	return codec
}

func runAuthenticate(t *testing.T, header string, repo *stubClientRepo, codec *service.TokenCodec) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(codec, repo, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return c, rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	codec := newTestCodec(t)
	alice := &domain.Client{ID: "c1", Email: "alice@example.com", Role: domain.RoleUser}
	repo := &stubClientRepo{byEmail: map[string]*domain.Client{"alice@example.com": alice}}

	token, err := codec.Issue(alice)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	c, rec := runAuthenticate(t, "Bearer "+token, repo, codec)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	client, ok := ClientFrom(c)
	if !ok || client.ID != "c1" {
		t.Fatalf("expected identity to be populated, got %+v (%v)", client, ok)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	codec := newTestCodec(t)
	c, rec := runAuthenticate(t, "", &stubClientRepo{}, codec)

	// Absent credential is not an error: the request proceeds unauthenticated.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := ClientFrom(c); ok {
		t.Fatalf("expected no identity")
	}
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	codec := newTestCodec(t)
	for _, header := range []string{"Token abc", "bearer abc", "Basic dXNlcjpwYXNz"} {
		c, rec := runAuthenticate(t, header, &stubClientRepo{}, codec)
		if rec.Code != http.StatusOK {
			t.Fatalf("header %q: expected 200, got %d", header, rec.Code)
		}
		if _, ok := ClientFrom(c); ok {
			t.Fatalf("header %q: expected no identity", header)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	codec := newTestCodec(t)
	c, rec := runAuthenticate(t, "Bearer not-a-token", &stubClientRepo{}, codec)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := ClientFrom(c); ok {
		t.Fatalf("expected no identity for invalid token")
	}
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	codec := newTestCodec(t)
	token, err := codec.Issue(&domain.Client{Email: "ghost@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	c, rec := runAuthenticate(t, "Bearer "+token, &stubClientRepo{byEmail: map[string]*domain.Client{}}, codec)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := ClientFrom(c); ok {
		t.Fatalf("expected no identity for unknown subject")
	}
}

func TestAuthenticate_LookupFailure(t *testing.T) {
	codec := newTestCodec(t)
	token, err := codec.Issue(&domain.Client{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// A storage failure must not abort the chain; the request continues
	// unauthenticated and downstream gates produce the error response.
	repo := &stubClientRepo{err: errors.New("connection reset")}
	c, rec := runAuthenticate(t, "Bearer "+token, repo, codec)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := ClientFrom(c); ok {
		t.Fatalf("expected no identity after lookup failure")
	}
}

func TestAuthenticate_NeverOverwrites(t *testing.T) {
	codec := newTestCodec(t)
	alice := &domain.Client{ID: "c1", Email: "alice@example.com"}
	bob := &domain.Client{ID: "c2", Email: "bob@example.com"}
	repo := &stubClientRepo{byEmail: map[string]*domain.Client{"bob@example.com": bob}}

	token, err := codec.Issue(bob)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	SetClient(c, alice)

	mw := Authenticate(codec, repo, zerolog.Nop())
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	client, ok := ClientFrom(c)
	if !ok || client.ID != "c1" {
		t.Fatalf("expected pre-populated identity to survive, got %+v", client)
	}
}
