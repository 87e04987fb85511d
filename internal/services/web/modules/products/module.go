package products

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

const moduleID = "products"

// Module serves the catalog, add-to-cart and the review dialogs.
type Module struct {
	deps module.Dependencies
}

// New returns the products module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return moduleID }

// Mount wires catalog routes under the products prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.ResolveVisitor == nil {
		return module.Mount{}, module.Missing(moduleID, "ResolveVisitor")
	}
	if m.deps.CatalogSource == nil {
		return module.Mount{}, module.Missing(moduleID, "CatalogSource")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.ProductsPrefix, Handler: mux}, nil
}
