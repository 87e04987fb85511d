// Package pagerender writes module pages, wrapping fragments in the
// storefront layout for full requests.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/dailyharvest/storefront/internal/services/web/platform/i18n"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
)

// ModulePage is one module response. HTMX requests receive only Fragment;
// full requests get it inside the storefront layout.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	// RefreshSeconds asks the browser to reload the page after the delay,
	// used while the catalog is still loading.
	RefreshSeconds int
}

// WriteModulePage renders page. A pending flash notice is consumed only by
// full pages so an HTMX swap does not swallow it.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	if page.StatusCode <= 0 {
		page.StatusCode = http.StatusOK
	}
	if page.Fragment == nil {
		page.Fragment = templ.NopComponent
	}

	view := webtemplates.MainContent()
	if !httpx.IsHTMXRequest(r) {
		loc, lang := webi18n.ResolveLocalizer(r)
		shell := Shell(r, deps, page.Title)
		shell.Lang = lang
		shell.Loc = loc
		shell.RefreshSeconds = page.RefreshSeconds
		shell.Toast = takeToast(w, r, deps, loc)
		view = webtemplates.Layout(shell)
	}

	var buf bytes.Buffer
	if err := view.Render(templ.WithChildren(httpx.RequestContext(r), page.Fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(page.StatusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// Shell builds the layout chrome for r: cart count, admin state and the
// footer year. Localization and toast are left to the caller.
func Shell(r *http.Request, deps module.Dependencies, title string) webtemplates.Shell {
	shell := webtemplates.Shell{
		Title: title,
		Year:  deps.Clock()().Year(),
	}
	if r != nil && r.URL != nil {
		shell.CurrentPath = r.URL.Path
	}
	if cart := deps.Visitor(r).Cart; cart != nil {
		shell.CartCount = cart.Count()
	}
	_, shell.AdminSignedIn = deps.Admin(r)
	return shell
}

// takeToast turns a pending flash notice into a toast. Copy missing from
// the catalog falls back to the notice key.
func takeToast(w http.ResponseWriter, r *http.Request, deps module.Dependencies, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r, deps.RequestMeta)
	if !ok {
		return nil
	}
	toast := &webtemplates.Toast{Kind: string(notice.Kind), Message: strings.TrimSpace(loc.Sprintf(notice.Key))}
	if toast.Message == "" {
		toast.Message = notice.Key
	}
	return toast
}
