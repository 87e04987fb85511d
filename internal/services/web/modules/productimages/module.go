package productimages

import (
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

const moduleID = "product-images"

// Module serves product image files.
type Module struct {
	deps module.Dependencies
}

// New returns the product image module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return moduleID }

// Mount serves deps.ProductImages under the image prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.ProductImages == nil {
		return module.Mount{}, module.Missing(moduleID, "ProductImages")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps.ProductImages))
	return module.Mount{Prefix: routepath.ProductImages, Handler: mux}, nil
}
