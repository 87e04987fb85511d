package login

import (
	"fmt"
	"net/http"

	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/platform/sessioncookie"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
	"github.com/dailyharvest/storefront/internal/storefront/auth"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Admin(r); ok {
		httpx.WriteRedirect(w, r, routepath.Admin)
		return
	}
	h.writeForm(w, r, webtemplates.LoginView{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	deps := h.Deps()
	username := r.FormValue("username")
	attempt, err := deps.Login.Submit(r.Context(), username, r.FormValue("password"))
	if err != nil {
		h.WriteError(w, r, fmt.Errorf("login: %w", err))
		return
	}
	if attempt.State != auth.StateAuthenticated {
		deps.Log().Printf("admin login rejected username=%q", username)
		h.writeForm(w, r, webtemplates.LoginView{
			Username: attempt.Username,
			Password: attempt.Password,
			Error:    webtemplates.T(h.PageLocalizer(r), "store.login.invalid"),
		})
		return
	}
	token, err := deps.Tokens.Issue(username)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	sessioncookie.Admin(deps.Tokens.TTL(), deps.RequestMeta).Write(w, r, token)
	deps.Log().Printf("admin signed in username=%q", username)
	redirect := attempt.Redirect
	if redirect == "" {
		redirect = routepath.Admin
	}
	h.RedirectWithNotice(w, r, redirect, flashnotice.Success("core.notice.signed_in"))
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, view webtemplates.LoginView) {
	loc := h.PageLocalizer(r)
	view.Loc = loc
	h.WritePage(w, r, webtemplates.T(loc, "store.login.title"), http.StatusOK, webtemplates.LoginPage(view))
}
