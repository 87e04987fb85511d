package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(modulehandler.NewBase(module.Dependencies{})))
}

func TestRegisterRoutesPublicPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(module.Dependencies{})))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "home", method: http.MethodGet, path: routepath.Root, wantStatus: http.StatusOK, wantBody: "Welcome to The Daily Harvest!"},
		{name: "home head", method: http.MethodHead, path: routepath.Root, wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: routepath.Health, wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "unknown path", method: http.MethodGet, path: "/does-not-exist", wantStatus: http.StatusNotFound, wantBody: `id="app-error-state"`},
		{name: "unknown nested path", method: http.MethodGet, path: "/a/b/c", wantStatus: http.StatusNotFound},
		{name: "post root", method: http.MethodPost, path: routepath.Root, wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantBody != "" && !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Fatalf("body missing %q: %q", tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestMountUsesRootPrefix(t *testing.T) {
	t.Parallel()

	mount, err := New(module.Dependencies{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root || mount.Handler == nil {
		t.Fatalf("mount = %+v", mount)
	}
	if got := New(module.Dependencies{}).ID(); got != "public" {
		t.Fatalf("ID() = %q", got)
	}
}
