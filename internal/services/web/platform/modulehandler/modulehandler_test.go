package modulehandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/storefront/cart"
)

func TestBaseDelegatesToDependencies(t *testing.T) {
	t.Parallel()

	store := cart.NewStore()
	base := NewBase(module.Dependencies{
		ResolveVisitor: func(*http.Request) module.Visitor { return module.Visitor{ID: "v-1", Cart: store} },
		ResolveAdmin:   func(*http.Request) (string, bool) { return "admin", true },
	})
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := base.Visitor(r); got.ID != "v-1" || got.Cart != store {
		t.Fatalf("Visitor() = %+v", got)
	}
	if name, ok := base.Admin(r); !ok || name != "admin" {
		t.Fatalf("Admin() = %q, %v", name, ok)
	}
	if got := base.PageLocalizer(r).Sprintf("core.app_name"); got != "The Daily Harvest" {
		t.Fatalf("PageLocalizer() app name = %q", got)
	}
}

func TestBaseZeroDependencies(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := base.Visitor(r); got != (module.Visitor{}) {
		t.Fatalf("Visitor() = %+v, want zero", got)
	}
	if _, ok := base.Admin(r); ok {
		t.Fatal("Admin() reported a signed-in admin")
	}
}

func TestWritePageRendersShell(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase(module.Dependencies{}).WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), "Home", http.StatusOK, nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `id="main"`) {
		t.Fatalf("status = %d body = %q", rr.Code, rr.Body.String())
	}
}

func TestWriteRefreshingPageSetsRefresh(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase(module.Dependencies{}).WriteRefreshingPage(rr, httptest.NewRequest(http.MethodGet, "/products", nil), "Products", 2, nil)
	if body := rr.Body.String(); !strings.Contains(body, `http-equiv="refresh" content="2"`) {
		t.Fatalf("body missing refresh: %q", body)
	}
}

func TestWriteErrorAndNotFound(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	rr := httptest.NewRecorder()
	base.WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), `id="app-error-state"`) {
		t.Fatalf("status = %d body = %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestRedirectWithNotice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase(module.Dependencies{}).RedirectWithNotice(rr, httptest.NewRequest(http.MethodPost, "/cart/clear", nil), "/cart", flashnotice.Success("core.notice.cart_cleared"))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/cart" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
	found := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashnotice.CookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("missing flash cookie")
	}
}
