// Package weberror renders shared error responses for storefront modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	apperrors "github.com/dailyharvest/storefront/internal/services/web/platform/errors"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/dailyharvest/storefront/internal/services/web/platform/i18n"
	"github.com/dailyharvest/storefront/internal/services/web/platform/pagerender"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a visitor-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(r)
	ctx := templ.WithChildren(httpx.RequestContext(r), webtemplates.ErrorState(statusCode, loc))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent().Render(ctx, w); err != nil {
			deps.Log().Printf("render error fragment: %v", err)
		}
		return
	}

	shell := pagerender.Shell(r, deps, webtemplates.ErrorPageTitle(statusCode, loc))
	shell.Lang = lang
	shell.Loc = loc
	if err := webtemplates.Layout(shell).Render(ctx, w); err != nil {
		deps.Log().Printf("render error page: %v", err)
	}
}

// WriteModuleError writes a module-safe localized error response. Internal
// error text never reaches the response body.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Printf("module error method=%s path=%s status=%d err=%v", requestMethod(r), requestPath(r), statusCode, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func requestMethod(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Method
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
