package admin

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

const moduleID = "admin"

// Module serves the sale panel. Composition mounts it behind the admin
// token check.
type Module struct {
	deps module.Dependencies
}

// New returns the admin module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return moduleID }

// Mount wires admin routes under the admin prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Sale == nil {
		return module.Mount{}, module.Missing(moduleID, "Sale")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
