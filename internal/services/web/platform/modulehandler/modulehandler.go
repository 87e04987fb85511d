// Package modulehandler provides a composable base for storefront module
// handlers.
//
// Modules share visitor resolution, localization, page rendering, flash
// notices and error handling. Handlers embed Base rather than repeating
// that scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/dailyharvest/storefront/internal/services/web/platform/i18n"
	"github.com/dailyharvest/storefront/internal/services/web/platform/pagerender"
	"github.com/dailyharvest/storefront/internal/services/web/platform/weberror"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
)

// Base carries the shared dependencies used by module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Deps returns the module dependencies.
func (b Base) Deps() module.Dependencies {
	return b.deps
}

// Visitor resolves the request visitor.
func (b Base) Visitor(r *http.Request) module.Visitor {
	return b.deps.Visitor(r)
}

// Admin resolves the signed-in admin, if any.
func (b Base) Admin(r *http.Request) (string, bool) {
	return b.deps.Admin(r)
}

// PageLocalizer resolves a localizer for the request.
func (b Base) PageLocalizer(r *http.Request) webtemplates.Localizer {
	loc, _ := webi18n.ResolveLocalizer(r)
	return loc
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// WritePage renders a module page (HTMX-aware) with the given title and
// content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	b.writeModulePage(w, r, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	})
}

// WriteRefreshingPage renders a page that reloads itself after
// refreshSeconds.
func (b Base) WriteRefreshingPage(w http.ResponseWriter, r *http.Request, title string, refreshSeconds int, fragment templ.Component) {
	b.writeModulePage(w, r, pagerender.ModulePage{
		Title:          title,
		Fragment:       fragment,
		RefreshSeconds: refreshSeconds,
	})
}

func (b Base) writeModulePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, b.deps, page); err != nil {
		b.WriteError(w, r, err)
	}
}

// RedirectWithNotice stores notice for the next page and redirects.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.deps.RequestMeta)
	httpx.WriteRedirect(w, r, location)
}
