package login

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

const moduleID = "login"

// Module serves the admin login gate.
type Module struct {
	deps module.Dependencies
}

// New returns the login module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return moduleID }

// Mount wires login routes.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Login == nil {
		return module.Mount{}, module.Missing(moduleID, "Login")
	}
	if m.deps.Tokens == nil {
		return module.Mount{}, module.Missing(moduleID, "Tokens")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.LoginPrefix, Handler: mux}, nil
}
