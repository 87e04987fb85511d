// Package app mounts the storefront and admin module groups on one root mux.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
	"github.com/dailyharvest/storefront/internal/services/web/platform/sessioncookie"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

// Routes lists the module groups served by the root handler.
type Routes struct {
	// Storefront modules are open to every visitor and stay outside /admin/.
	Storefront []module.Module
	// Admin modules mount under /admin/ and need a signed-in admin.
	Admin []module.Module
	// SignedIn reports whether the request carries a valid admin token.
	// Nil treats every request as anonymous.
	SignedIn     func(*http.Request) bool
	SchemePolicy requestmeta.SchemePolicy
}

// group is one set of modules sharing a prefix rule and a guard.
type group struct {
	name    string
	admin   bool
	guard   func(http.Handler) http.Handler
	modules []module.Module
}

// router records which module owns each mux pattern.
type router struct {
	mux    *http.ServeMux
	owners map[string]string
}

// Compose builds the root handler for routes.
func Compose(routes Routes) (http.Handler, error) {
	signedIn := routes.SignedIn
	if signedIn == nil {
		signedIn = func(*http.Request) bool { return false }
	}
	groups := []group{
		{name: "storefront", modules: routes.Storefront},
		{name: "admin", admin: true, guard: adminGuard(signedIn, routes.SchemePolicy), modules: routes.Admin},
	}

	r := &router{mux: http.NewServeMux(), owners: make(map[string]string)}
	for _, g := range groups {
		for _, feature := range g.modules {
			if err := r.mount(g, feature); err != nil {
				return nil, err
			}
		}
	}
	return r.mux, nil
}

func (r *router) mount(g group, feature module.Module) error {
	if feature == nil {
		return fmt.Errorf("%s module is nil", g.name)
	}
	m, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := checkPrefix(m.Prefix); err != nil {
		return fmt.Errorf("module %q has invalid prefix %q: %w", feature.ID(), m.Prefix, err)
	}
	if m.Handler == nil {
		return fmt.Errorf("module %q has no handler", feature.ID())
	}
	if strings.HasPrefix(m.Prefix, routepath.AdminPrefix) != g.admin {
		return fmt.Errorf("module %q prefix %q does not belong to the %s group", feature.ID(), m.Prefix, g.name)
	}

	handler := m.Handler
	if g.guard != nil {
		handler = g.guard(handler)
	}
	for _, pattern := range prefixPatterns(m.Prefix) {
		if owner, taken := r.owners[pattern]; taken {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, owner)
		}
		r.owners[pattern] = feature.ID()
		r.mux.Handle(pattern, handler)
	}
	return nil
}

func checkPrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return fmt.Errorf("prefix has surrounding whitespace")
	case !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/"):
		return fmt.Errorf("prefix must start and end with /")
	}
	return nil
}

// prefixPatterns returns prefix plus its slashless form, so "/cart" reaches
// the cart module instead of the root catch-all.
func prefixPatterns(prefix string) []string {
	if prefix == routepath.Root {
		return []string{prefix}
	}
	return []string{prefix, strings.TrimSuffix(prefix, "/")}
}

// adminGuard sends anonymous requests to the login page and rejects admin
// mutations whose origin cannot be matched to the shop.
func adminGuard(signedIn func(*http.Request) bool, policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	adminCookie := sessioncookie.Admin(0, policy)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !signedIn(r) {
				httpx.WriteRedirect(w, r, routepath.Login)
				return
			}
			if changesState(r.Method) {
				if _, ok := adminCookie.Read(r); ok && !requestmeta.HasSameOriginProof(r, policy) {
					http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func changesState(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
