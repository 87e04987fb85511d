package cart

import (
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Cart, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartCheckout, h.handleCheckout)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartConfirm, h.handleConfirm)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartCancel, h.handleCancel)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartClear, h.handleClear)
	mux.HandleFunc(routepath.CartPrefix, h.WriteNotFound)
}
