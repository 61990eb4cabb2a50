package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/toolvault/catalog-api/internal/core/domain"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	clients ports.ClientRepository
	codec   ports.TokenCodec
	log     zerolog.Logger
}

func NewAuthService(clients ports.ClientRepository, codec ports.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{clients: clients, codec: codec, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterClientInput) (*domain.Client, error) {
	if input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleUser {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     strings.ToUpper(input.LastName),
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("role", created.Role).Msg("client registered")
	return created, nil
}

// Login authenticates by email and password. Every failure maps to
// ErrInvalidCredentials so callers cannot tell which credential was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Client, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(client)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	return token, client, nil
}
