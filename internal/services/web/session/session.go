// Package session keeps each visitor's in-memory cart, checkout flow and
// catalog, keyed by the visitor cookie.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/sessioncookie"
	"github.com/dailyharvest/storefront/internal/storefront/auth"
	"github.com/dailyharvest/storefront/internal/storefront/cart"
	"github.com/dailyharvest/storefront/internal/storefront/catalog"
)

// DefaultTTL is how long an idle visitor session is kept.
const DefaultTTL = 2 * time.Hour

type entry struct {
	visitor  module.Visitor
	lastSeen time.Time
}

// Registry is a thread-safe in-memory visitor session store.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	ttl       time.Duration
	now       func() time.Time
	lastPrune time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the registry clock.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry creates an empty registry expiring sessions idle for ttl.
func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastPrune = r.now()
	return r
}

// Lookup returns the live session for id and marks it as seen.
func (r *Registry) Lookup(id string) (module.Visitor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	e, ok := r.sessions[id]
	if !ok {
		return module.Visitor{}, false
	}
	if now.Sub(e.lastSeen) > r.ttl {
		r.expireLocked(id, e)
		return module.Visitor{}, false
	}
	e.lastSeen = now
	return e.visitor, true
}

// Create starts a new visitor session with an empty cart, a browsing
// checkout flow and an unloaded catalog.
func (r *Registry) Create() module.Visitor {
	visitor := module.Visitor{
		ID:       uuid.NewString(),
		Cart:     cart.NewStore(),
		Checkout: cart.NewFlow(),
		Catalog:  catalog.NewHolder(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if now.Sub(r.lastPrune) > r.ttl {
		r.pruneLocked(now)
	}
	r.sessions[visitor.ID] = &entry{visitor: visitor, lastSeen: now}
	return visitor
}

func (r *Registry) pruneLocked(now time.Time) {
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			r.expireLocked(id, e)
		}
	}
	r.lastPrune = now
}

// expireLocked drops a session and stops its catalog so a load still in
// flight cannot write into the abandoned visitor.
func (r *Registry) expireLocked(id string, e *entry) {
	delete(r.sessions, id)
	if e.visitor.Catalog != nil {
		e.visitor.Catalog.Reset()
	}
}

type visitorKey struct{}

// Middleware resolves the visitor from the session cookie, creating a
// session and issuing the cookie when none is live, and installs the
// visitor's cart as the request's cart provider.
func (r *Registry) Middleware(cookie sessioncookie.Cookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			visitor, ok := module.Visitor{}, false
			if id, present := cookie.Read(req); present {
				visitor, ok = r.Lookup(id)
			}
			if !ok {
				visitor = r.Create()
				cookie.Write(w, req, visitor.ID)
			}
			ctx := context.WithValue(req.Context(), visitorKey{}, visitor)
			ctx = cart.WithStore(ctx, visitor.Cart)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// ResolveVisitor returns the visitor installed by Middleware. The cart comes
// from the request's cart provider, so a request that bypassed Middleware
// panics with cart.ErrNoProvider.
func ResolveVisitor(req *http.Request) module.Visitor {
	visitor, _ := req.Context().Value(visitorKey{}).(module.Visitor)
	visitor.Cart = cart.FromContext(req.Context())
	return visitor
}

// AdminResolver returns a resolver that reports the admin named by a valid
// token in cookie.
func AdminResolver(tokens *auth.TokenIssuer, cookie sessioncookie.Cookie) module.ResolveAdmin {
	return func(req *http.Request) (string, bool) {
		if tokens == nil {
			return "", false
		}
		raw, ok := cookie.Read(req)
		if !ok {
			return "", false
		}
		username, err := tokens.Verify(raw)
		if err != nil {
			return "", false
		}
		return username, true
	}
}
