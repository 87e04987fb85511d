package contact

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

const moduleID = "contact"

// Module serves the contact-us form.
type Module struct {
	deps module.Dependencies
}

// New returns the contact module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return moduleID }

// Mount wires contact routes under the contact prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
