// Package httpx provides HTTP middleware and response helpers shared by
// storefront modules.
package httpx

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/dailyharvest/storefront/internal/services/web/platform/errors"
)

const (
	htmxHeader         = "HX-Request"
	htmxRedirectHeader = "HX-Redirect"
	requestIDHeader    = "X-Request-ID"

	// MaxFormBytes bounds urlencoded form bodies.
	MaxFormBytes = 64 << 10
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// maxRequestIDLen caps client-supplied request IDs before they reach logs.
const maxRequestIDLen = 128

// Chain applies middleware so the first argument runs outermost. Nil
// entries are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for _, mw := range slices.Backward(middleware) {
		if mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

// RequestID tags each request with an X-Request-ID, keeping a well-formed
// client value and otherwise minting "sf-<uuid>". The ID is echoed on the
// response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if !acceptableRequestID(id) {
				id = "sf-" + uuid.NewString()
				r.Header.Set(requestIDHeader, id)
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r)
		})
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// RecoverPanic turns a handler panic into a 500 and logs it with the
// request ID and stack. http.ErrAbortHandler is re-raised.
func RecoverPanic(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				switch {
				case recovered == nil:
					return
				case recovered == http.ErrAbortHandler:
					panic(recovered)
				}
				id := r.Header.Get(requestIDHeader)
				if id == "" {
					id = "-"
				}
				logger.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method, r.URL.Path, id, recovered, bytes.TrimSpace(debug.Stack()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestContext returns r.Context(), or context.Background for a nil request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether the request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(htmxHeader) == "true"
}

// WriteRedirect sends a 302 to location. HTMX requests get a 200 with
// HX-Redirect so the browser navigates instead of swapping the target page
// into the current one.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	switch {
	case w == nil:
	case IsHTMXRequest(r):
		w.Header().Set(htmxRedirectHeader, location)
		w.WriteHeader(http.StatusOK)
	case r == nil:
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusFound)
	default:
		http.Redirect(w, r, location, http.StatusFound)
	}
}

// ParseForm reads a bounded urlencoded body. Malformed or oversized bodies
// become invalid-input errors.
func ParseForm(w http.ResponseWriter, r *http.Request) error {
	const key = "core.error.invalid_form"
	if r == nil {
		return apperrors.EK(apperrors.KindInvalidInput, key, "no request to parse")
	}
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	}
	return apperrors.Wrap(apperrors.KindInvalidInput, key, r.ParseForm())
}
