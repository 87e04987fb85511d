// Package flash carries a one-time shopper notice across a redirect. The
// cookie holds "<kind>:<catalog key>" and is cleared on the next full page.
package flash

import (
	"net/http"
	"strings"

	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
)

// CookieName is the notice cookie.
const CookieName = "storefront_flash"

// Kind selects the toast style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// Notice names catalog copy to show once.
type Notice struct {
	Kind Kind
	Key  string
}

// Success confirms a shopper or admin action, such as adding to the cart.
func Success(key string) Notice { return Notice{Kind: KindSuccess, Key: key} }

// Info reports a neutral state change, such as the sale ending.
func Info(key string) Notice { return Notice{Kind: KindInfo, Key: key} }

func (n Notice) encode() (string, bool) {
	if !validKind(n.Kind) || !validKey(n.Key) {
		return "", false
	}
	return string(n.Kind) + ":" + n.Key, true
}

func decode(value string) (Notice, bool) {
	kind, key, ok := strings.Cut(strings.TrimSpace(value), ":")
	n := Notice{Kind: Kind(kind), Key: key}
	if !ok || !validKind(n.Kind) || !validKey(n.Key) {
		return Notice{}, false
	}
	return n, true
}

func validKind(k Kind) bool {
	return k == KindSuccess || k == KindInfo
}

// validKey accepts dotted catalog keys like "core.notice.cart_cleared".
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
		default:
			return false
		}
	}
	return true
}

// Write stores notice for the next page. Malformed notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	value, ok := notice.encode()
	if w == nil || !ok {
		return
	}
	http.SetCookie(w, cookie(r, policy, value, 0))
}

// ReadAndClear returns the pending notice and expires the cookie. A tampered
// cookie is cleared and reports no notice.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, cookie(r, policy, "", -1))
	}
	return decode(c.Value)
}

func cookie(r *http.Request, policy requestmeta.SchemePolicy, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
