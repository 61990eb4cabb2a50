package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")
var ErrForbidden = errors.New("access forbidden")

// Client models an authenticated actor in the system. Email doubles as the
// login name and is unique across all clients.
type Client struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the client carries the administrator role.
func (c *Client) IsAdmin() bool {
	return c.Role == RoleAdmin
}
