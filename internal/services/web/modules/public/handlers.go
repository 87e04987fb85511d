package public

import (
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "store.home.title"), http.StatusOK, webtemplates.HomePage(loc))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
