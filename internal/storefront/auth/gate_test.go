package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type authenticatorFunc func(ctx context.Context, username, password string) error

func (f authenticatorFunc) Authenticate(ctx context.Context, username, password string) error {
	return f(ctx, username, password)
}

func TestGateSubmit(t *testing.T) {
	t.Parallel()

	gate := NewGate(newTestStore(t), "/admin")

	tests := []struct {
		name     string
		username string
		password string
		want     Attempt
	}{
		{
			name:     "accepted",
			username: "admin",
			password: "admin",
			want:     Attempt{State: StateAuthenticated, Redirect: "/admin"},
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			want:     Attempt{State: StateRejected, Username: "admin", Password: "nope", Error: "Invalid credentials"},
		},
		{
			name:     "unknown user",
			username: "guest",
			password: "admin",
			want:     Attempt{State: StateRejected, Username: "guest", Password: "admin", Error: "Invalid credentials"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := gate.Submit(context.Background(), tc.username, tc.password)
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Submit() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGatePropagatesAuthenticatorFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("directory offline")
	gate := NewGate(authenticatorFunc(func(context.Context, string, string) error { return boom }), "/admin")
	if _, err := gate.Submit(context.Background(), "admin", "admin"); !errors.Is(err, boom) {
		t.Fatalf("Submit() error = %v, want %v", err, boom)
	}
	if _, err := NewGate(nil, "/admin").Submit(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error without authenticator")
	}
}
