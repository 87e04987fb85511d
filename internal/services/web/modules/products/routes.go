package products

import (
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Products, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProductsCart, h.handleAddToCart)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductReviewsPattern, h.handleReviews)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProductReviewsPattern, h.handleReviewSubmit)
	mux.HandleFunc(routepath.ProductsPrefix, h.handleNotFound)
}
