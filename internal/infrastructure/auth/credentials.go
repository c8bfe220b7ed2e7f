package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/meatkonnex/backend/internal/infrastructure/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrNoAdminCredential is returned when neither a hash nor a password is configured
var ErrNoAdminCredential = errors.New("no admin credential configured")

// AdminCredentials holds the single configured admin account
type AdminCredentials struct {
	username string
	hash     []byte
}

// NewAdminCredentials builds the credential store from configuration.
// A configured bcrypt hash wins; otherwise the plaintext password is hashed once here.
func NewAdminCredentials(cfg config.AuthConfig) (*AdminCredentials, error) {
	if cfg.AdminUsername == "" {
		return nil, errors.New("admin username is required")
	}

	switch {
	case cfg.AdminPasswordHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &AdminCredentials{username: cfg.AdminUsername, hash: []byte(cfg.AdminPasswordHash)}, nil
	case cfg.AdminPassword != "":
		hash, err := HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
		return &AdminCredentials{username: cfg.AdminUsername, hash: []byte(hash)}, nil
	default:
		return nil, ErrNoAdminCredential
	}
}

// HashPassword returns the bcrypt hash of password at the default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether username and password match the admin account.
// The hash is compared even when the username does not match.
func (c *AdminCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return userOK && passOK
}

// IsAdmin reports whether a token subject is the admin account
func (c *AdminCredentials) IsAdmin(subject string) bool {
	return subject != "" && subject == c.username
}

// Username returns the admin username
func (c *AdminCredentials) Username() string {
	return c.username
}
