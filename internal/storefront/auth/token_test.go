package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	subject, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "admin" {
		t.Fatalf("subject = %q, want admin", subject)
	}
}

func TestTokenIssuerRejectsForeignAndExpiredTokens(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("secret-a", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	other, err := NewTokenIssuer("secret-b", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	foreign, err := other.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := issuer.Verify(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify(foreign) error = %v", err)
	}

	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	issuer.now = time.Now
	if _, err := issuer.Verify(stale); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify(expired) error = %v", err)
	}

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Verify(%q) error = %v", raw, err)
		}
	}
}

func TestNewTokenIssuerGeneratesSecret(t *testing.T) {
	t.Parallel()

	a, err := NewTokenIssuer("", time.Minute)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	b, err := NewTokenIssuer("", time.Minute)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	token, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := b.Verify(token); err == nil {
		t.Fatal("tokens must not verify across generated secrets")
	}
	if _, err := NewTokenIssuer("x", 0); err == nil {
		t.Fatal("expected ttl error")
	}
}
