// Package auth gates the admin portal behind a credential check and a
// signed session token.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator verifies a username and password.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

// CredentialStore authenticates a single configured account against a
// bcrypt hash.
type CredentialStore struct {
	username string
	hash     []byte
}

// NewCredentialStore builds a store for username. When hash is empty the
// password is hashed with cost; otherwise hash must be a bcrypt hash and
// password is ignored.
func NewCredentialStore(username, password, hash string, cost int) (*CredentialStore, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("admin username is required")
	}
	hash = strings.TrimSpace(hash)
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
		return &CredentialStore{username: username, hash: []byte(hash)}, nil
	}
	if password == "" {
		return nil, errors.New("admin password or password hash is required")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	generated, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &CredentialStore{username: username, hash: generated}, nil
}

// Authenticate implements Authenticator.
func (s *CredentialStore) Authenticate(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// The hash is compared even when the username differs.
	hashErr := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	if !userOK || hashErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
