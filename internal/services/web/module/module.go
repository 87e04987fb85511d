// Package module defines the contract between storefront page modules and
// web composition.
package module

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
	"github.com/dailyharvest/storefront/internal/storefront/auth"
	"github.com/dailyharvest/storefront/internal/storefront/cart"
	"github.com/dailyharvest/storefront/internal/storefront/catalog"
	"github.com/dailyharvest/storefront/internal/storefront/sale"
)

// ErrMissingDependency is returned by Mount when a module was composed
// without something it needs.
var ErrMissingDependency = errors.New("missing module dependency")

// Visitor is the per-session state a request operates on.
type Visitor struct {
	ID       string
	Cart     *cart.Store
	Checkout *cart.Flow
	Catalog  *catalog.Holder
}

// ResolveVisitor returns the current request's visitor.
type ResolveVisitor func(*http.Request) Visitor

// ResolveAdmin returns the signed-in admin username, if any.
type ResolveAdmin func(*http.Request) (string, bool)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is what web composition mounts.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies are handed to modules at construction.
type Dependencies struct {
	ResolveVisitor ResolveVisitor
	ResolveAdmin   ResolveAdmin
	RequestMeta    requestmeta.SchemePolicy

	CatalogSource    catalog.Source
	CatalogResources []string
	CatalogLoadWait  time.Duration
	ProductImages    fs.FS

	Sale   *sale.Panel
	Login  *auth.Gate
	Tokens *auth.TokenIssuer

	Logger *log.Logger
	Now    func() time.Time
}

// Missing wraps ErrMissingDependency for the named field of moduleID.
func Missing(moduleID, field string) error {
	return fmt.Errorf("module %q: %w: %s", moduleID, ErrMissingDependency, field)
}

// Clock returns Now, or time.Now when unset.
func (d Dependencies) Clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Log returns Logger, or the standard logger when unset.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Visitor resolves the request visitor, or the zero Visitor when no
// resolver is configured.
func (d Dependencies) Visitor(r *http.Request) Visitor {
	if d.ResolveVisitor == nil {
		return Visitor{}
	}
	return d.ResolveVisitor(r)
}

// Admin resolves the signed-in admin, if any.
func (d Dependencies) Admin(r *http.Request) (string, bool) {
	if d.ResolveAdmin == nil {
		return "", false
	}
	return d.ResolveAdmin(r)
}
