package admin

import (
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handlePanel)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handlePanel)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminSale, h.handleSaleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminSaleEnd, h.handleSaleEnd)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.AdminPrefix, h.WriteNotFound)
}
