package contact

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func newHandler(t *testing.T, logs *bytes.Buffer) http.Handler {
	t.Helper()
	mount, err := New(module.Dependencies{Logger: log.New(logs, "", 0)}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.ContactPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func post(handler http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, routepath.Contact, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestContactFormRenders(t *testing.T) {
	t.Parallel()

	handler := newHandler(t, &bytes.Buffer{})
	for _, path := range []string{routepath.Contact, routepath.ContactPrefix} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, `id="contact"`) || strings.Contains(body, "contact-thanks") {
			t.Fatalf("GET %s body = %q", path, body)
		}
	}
}

func TestContactValidSubmission(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	handler := newHandler(t, logs)
	rr := post(handler, url.Values{
		"name":    {"  Ada  "},
		"email":   {"ada@example.com"},
		"request": {"More pears, please."},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="contact-thanks"`) || !strings.Contains(body, "Thank you for your message.") {
		t.Fatalf("body = %q", body)
	}
	if strings.Contains(body, "More pears") {
		t.Fatalf("form was not reset: %q", body)
	}
	if !strings.Contains(logs.String(), `name="Ada"`) {
		t.Fatalf("logs = %q", logs.String())
	}
}

func TestContactInvalidSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  url.Values
		want    []string
		notWant []string
	}{
		{
			name:   "all empty",
			values: url.Values{},
			want:   []string{`id="name-error"`, `id="email-error"`, `id="request-error"`, "Please enter your name."},
		},
		{
			name:    "bad email",
			values:  url.Values{"name": {"Ada"}, "email": {"ada@example"}, "request": {"hi"}},
			want:    []string{`id="email-error"`, "Please enter a valid email address.", `value="Ada"`},
			notWant: []string{`id="name-error"`, `id="request-error"`},
		},
		{
			name:    "blank request",
			values:  url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "request": {"   "}},
			want:    []string{`id="request-error"`},
			notWant: []string{`id="name-error"`, `id="email-error"`},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := post(newHandler(t, &bytes.Buffer{}), tc.values)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rr.Code)
			}
			body := rr.Body.String()
			for _, marker := range tc.want {
				if !strings.Contains(body, marker) {
					t.Fatalf("body missing %q: %q", marker, body)
				}
			}
			for _, marker := range tc.notWant {
				if strings.Contains(body, marker) {
					t.Fatalf("body has %q: %q", marker, body)
				}
			}
			if strings.Contains(body, "contact-thanks") {
				t.Fatal("thank-you dialog shown for invalid input")
			}
		})
	}
}

func TestContactUnknownPath(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newHandler(t, &bytes.Buffer{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ContactPrefix+"nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}
