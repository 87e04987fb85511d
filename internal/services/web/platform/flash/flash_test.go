package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
)

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	Write(seed, httptest.NewRequest(http.MethodPost, "/cart/clear", nil), Success("core.notice.cart_cleared"), requestmeta.SchemePolicy{})
	cookies := seed.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "success:core.notice.cart_cleared" {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookies[0])
	rr := httptest.NewRecorder()
	notice, ok := ReadAndClear(rr, req, requestmeta.SchemePolicy{})
	if !ok || notice != Success("core.notice.cart_cleared") {
		t.Fatalf("ReadAndClear() = %+v, %t", notice, ok)
	}
	cleared := rr.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("clear cookie = %+v", cleared)
	}
}

func TestWriteDropsMalformedNotices(t *testing.T) {
	t.Parallel()

	for name, notice := range map[string]Notice{
		"blank key":    Info(""),
		"unknown kind": {Kind: "warning", Key: "core.notice.signed_out"},
		"spaces":       Info("core notice"),
		"trailing dot": Info("core.notice."),
	} {
		rr := httptest.NewRecorder()
		Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), notice, requestmeta.SchemePolicy{})
		if got := rr.Result().Cookies(); len(got) != 0 {
			t.Fatalf("%s: cookies = %+v", name, got)
		}
	}
}

func TestReadAndClearRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"info", "info:", "alert:core.notice.signed_out", "info:<script>"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
		rr := httptest.NewRecorder()
		if notice, ok := ReadAndClear(rr, req, requestmeta.SchemePolicy{}); ok {
			t.Fatalf("ReadAndClear(%q) = %+v", value, notice)
		}
		if len(rr.Result().Cookies()) != 1 {
			t.Fatalf("ReadAndClear(%q) did not clear the cookie", value)
		}
	}
}

func TestSecureCookieFollowsSchemePolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "http://shop.example.test/admin/sale/end", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Write(rr, req, Info("core.notice.sale_ended"), requestmeta.SchemePolicy{TrustForwardedProto: true})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("cookies = %+v", cookies)
	}
}
