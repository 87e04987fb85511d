package contact

import (
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleForm)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactPrefix+"{$}", h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
	mux.HandleFunc(routepath.ContactPrefix, h.WriteNotFound)
}
