package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
)

func TestCookieWriteAndRead(t *testing.T) {
	t.Parallel()

	c := Visitor(requestmeta.SchemePolicy{})
	rr := httptest.NewRecorder()
	c.Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), " abc ")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	got := cookies[0]
	if got.Name != VisitorName || got.Value != "abc" || !got.HttpOnly || got.Path != "/" || got.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie = %#v", got)
	}
	if got.Secure {
		t.Fatal("plain http cookie must not be Secure")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(got)
	value, ok := c.Read(req)
	if !ok || value != "abc" {
		t.Fatalf("Read() = %q, %t", value, ok)
	}
}

func TestCookieReadMissingOrBlank(t *testing.T) {
	t.Parallel()

	c := Visitor(requestmeta.SchemePolicy{})
	if _, ok := c.Read(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("missing cookie reported present")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorName, Value: " "})
	if _, ok := c.Read(req); ok {
		t.Fatal("blank cookie reported present")
	}
	if _, ok := c.Read(nil); ok {
		t.Fatal("nil request reported present")
	}
}

func TestAdminCookieMaxAgeAndClear(t *testing.T) {
	t.Parallel()

	c := Admin(2*time.Hour, requestmeta.SchemePolicy{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "https://shop.test/", nil)
	c.Write(rr, req, "token")
	written := rr.Result().Cookies()[0]
	if written.MaxAge != 7200 || !written.Secure {
		t.Fatalf("admin cookie = %#v", written)
	}

	rr = httptest.NewRecorder()
	c.Clear(rr, req)
	cleared := rr.Result().Cookies()[0]
	if cleared.Name != AdminName || cleared.MaxAge >= 0 || cleared.Value != "" {
		t.Fatalf("cleared cookie = %#v", cleared)
	}
}
