package productimages

import (
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.Handle(http.MethodGet+" "+routepath.ProductImages, h.files)
}
