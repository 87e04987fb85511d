package admin

import (
	"errors"
	"net/http"

	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/platform/sessioncookie"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
	"github.com/dailyharvest/storefront/internal/storefront/sale"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handlePanel(w http.ResponseWriter, r *http.Request) {
	h.writePanel(w, r)
}

// handleSaleSubmit applies a new sale percent. Rejected input is shown in
// the panel with the current sale unchanged.
func (h handlers) handleSaleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	deps := h.Deps()
	raw := r.FormValue("percent")
	err := deps.Sale.Submit(raw)
	switch {
	case err == nil:
		username, _ := h.Admin(r)
		deps.Log().Printf("sale updated username=%q percent=%q", username, raw)
		httpx.WriteRedirect(w, r, routepath.Admin)
	case errors.Is(err, sale.ErrNotANumber):
		h.writePanel(w, r)
	default:
		h.WriteError(w, r, err)
	}
}

func (h handlers) handleSaleEnd(w http.ResponseWriter, r *http.Request) {
	h.Deps().Sale.End()
	h.RedirectWithNotice(w, r, routepath.Admin, flashnotice.Info("core.notice.sale_ended"))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	deps := h.Deps()
	sessioncookie.Admin(0, deps.RequestMeta).Clear(w, r)
	h.RedirectWithNotice(w, r, routepath.Root, flashnotice.Info("core.notice.signed_out"))
}

func (h handlers) writePanel(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	username, _ := h.Admin(r)
	h.WritePage(w, r, webtemplates.T(loc, "store.admin.title"), http.StatusOK, webtemplates.AdminPage(webtemplates.AdminView{
		Loc:      loc,
		Username: username,
		Sale:     h.Deps().Sale.Snapshot(),
	}))
}
