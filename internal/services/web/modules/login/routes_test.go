package login

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
	"github.com/dailyharvest/storefront/internal/services/web/platform/sessioncookie"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	"github.com/dailyharvest/storefront/internal/services/web/session"
	"github.com/dailyharvest/storefront/internal/storefront/auth"
)

type fixture struct {
	tokens  *auth.TokenIssuer
	handler http.Handler
	logs    *bytes.Buffer
}

func newFixture(t *testing.T, authenticator auth.Authenticator) fixture {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	logs := &bytes.Buffer{}
	mount, err := New(module.Dependencies{
		Login:        auth.NewGate(authenticator, routepath.Admin),
		Tokens:       tokens,
		ResolveAdmin: session.AdminResolver(tokens, sessioncookie.Admin(time.Hour, requestmeta.SchemePolicy{})),
		Logger:       log.New(logs, "", 0),
	}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.LoginPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return fixture{tokens: tokens, handler: mount.Handler, logs: logs}
}

func credentialStore(t *testing.T) auth.Authenticator {
	t.Helper()
	store, err := auth.NewCredentialStore("admin", "admin", "", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCredentialStore() error = %v", err)
	}
	return store
}

func post(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, routepath.Login, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func adminCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessioncookie.AdminName {
			return c
		}
	}
	return nil
}

type authenticatorFunc func(context.Context, string, string) error

func (f authenticatorFunc) Authenticate(ctx context.Context, username, password string) error {
	return f(ctx, username, password)
}

func TestMountRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{}).Mount(); !errors.Is(err, module.ErrMissingDependency) {
		t.Fatalf("Mount() error = %v", err)
	}
	_, err := New(module.Dependencies{Login: auth.NewGate(nil, "")}).Mount()
	if !errors.Is(err, module.ErrMissingDependency) || !strings.Contains(err.Error(), "Tokens") {
		t.Fatalf("Mount() error = %v", err)
	}
}

func TestFormRenders(t *testing.T) {
	t.Parallel()

	f := newFixture(t, credentialStore(t))
	for _, path := range []string{routepath.Login, routepath.LoginPrefix} {
		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `name="username"`) {
			t.Fatalf("GET %s status = %d body = %q", path, rr.Code, rr.Body.String())
		}
		if strings.Contains(rr.Body.String(), `id="login-error"`) {
			t.Fatalf("fresh form shows an error: %q", rr.Body.String())
		}
	}
}

func TestValidCredentialsSignIn(t *testing.T) {
	t.Parallel()

	f := newFixture(t, credentialStore(t))
	rr := post(f.handler, url.Values{"username": {"admin"}, "password": {"admin"}})
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != routepath.Admin {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
	cookie := adminCookie(rr)
	if cookie == nil || !cookie.HttpOnly || cookie.MaxAge != int(time.Hour/time.Second) {
		t.Fatalf("admin cookie = %+v", cookie)
	}
	if subject, err := f.tokens.Verify(cookie.Value); err != nil || subject != "admin" {
		t.Fatalf("Verify() = %q, %v", subject, err)
	}

	req := httptest.NewRequest(http.MethodGet, routepath.Login, nil)
	req.AddCookie(cookie)
	again := httptest.NewRecorder()
	f.handler.ServeHTTP(again, req)
	if again.Code != http.StatusFound || again.Header().Get("Location") != routepath.Admin {
		t.Fatalf("signed-in GET status = %d location = %q", again.Code, again.Header().Get("Location"))
	}
}

func TestInvalidCredentialsEchoFields(t *testing.T) {
	t.Parallel()

	f := newFixture(t, credentialStore(t))
	rr := post(f.handler, url.Values{"username": {"admin"}, "password": {"wrong"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, marker := range []string{"Invalid credentials", `value="admin"`, `value="wrong"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
	if adminCookie(rr) != nil {
		t.Fatal("rejected login issued a cookie")
	}
	if !strings.Contains(f.logs.String(), "admin login rejected") {
		t.Fatalf("log = %q", f.logs.String())
	}
}

func TestAuthenticatorFailureIsServerError(t *testing.T) {
	t.Parallel()

	f := newFixture(t, authenticatorFunc(func(context.Context, string, string) error {
		return errors.New("credential backend down")
	}))
	rr := post(f.handler, url.Values{"username": {"admin"}, "password": {"admin"}})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "credential backend down") {
		t.Fatalf("body leaked error: %q", rr.Body.String())
	}
}
