package auth

import (
	"context"
	"errors"
)

// State is a login gate state.
type State int

const (
	// StateAwaitingCredentials is the initial form.
	StateAwaitingCredentials State = iota
	// StateAuthenticated means the credentials were accepted.
	StateAuthenticated
	// StateRejected means the credentials were refused.
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	default:
		return "awaiting_credentials"
	}
}

// InvalidCredentialsMessage is shown after a rejected attempt.
const InvalidCredentialsMessage = "Invalid credentials"

// Attempt is the outcome of one login submission. Username and Password are
// what the form should show next.
type Attempt struct {
	State    State
	Username string
	Password string
	Redirect string
	Error    string
}

// Gate runs login submissions through an Authenticator.
type Gate struct {
	auth     Authenticator
	redirect string
}

// NewGate returns a gate that sends authenticated visitors to redirect.
func NewGate(auth Authenticator, redirect string) *Gate {
	return &Gate{auth: auth, redirect: redirect}
}

// Submit checks username and password. Success clears the fields and sets
// Redirect; failure echoes the fields back with an error message.
func (g *Gate) Submit(ctx context.Context, username, password string) (Attempt, error) {
	if g == nil || g.auth == nil {
		return Attempt{}, errors.New("login gate has no authenticator")
	}
	err := g.auth.Authenticate(ctx, username, password)
	switch {
	case err == nil:
		return Attempt{State: StateAuthenticated, Redirect: g.redirect}, nil
	case errors.Is(err, ErrInvalidCredentials):
		return Attempt{
			State:    StateRejected,
			Username: username,
			Password: password,
			Error:    InvalidCredentialsMessage,
		}, nil
	default:
		return Attempt{}, err
	}
}
