package cart

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

const moduleID = "cart"

// Module serves the cart page and the checkout flow.
type Module struct {
	deps module.Dependencies
}

// New returns the cart module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return moduleID }

// Mount wires cart routes under the cart prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.ResolveVisitor == nil {
		return module.Mount{}, module.Missing(moduleID, "ResolveVisitor")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.CartPrefix, Handler: mux}, nil
}
