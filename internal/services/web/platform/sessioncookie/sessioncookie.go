// Package sessioncookie reads and writes the storefront's HttpOnly cookies.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
)

const (
	// VisitorName carries the anonymous visitor session id.
	VisitorName = "storefront_session"
	// AdminName carries the signed admin token.
	AdminName = "storefront_admin"
)

// Cookie describes one named session cookie.
type Cookie struct {
	Name   string
	MaxAge time.Duration
	Policy requestmeta.SchemePolicy
}

// Visitor returns the visitor session cookie.
func Visitor(policy requestmeta.SchemePolicy) Cookie {
	return Cookie{Name: VisitorName, Policy: policy}
}

// Admin returns the admin token cookie living for ttl.
func Admin(ttl time.Duration, policy requestmeta.SchemePolicy) Cookie {
	return Cookie{Name: AdminName, MaxAge: ttl, Policy: policy}
}

// Read returns the trimmed cookie value when present and non-empty.
func (c Cookie) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// Write sets the cookie to value.
func (c Cookie) Write(w http.ResponseWriter, r *http.Request, value string) {
	if w == nil {
		return
	}
	cookie := c.base(r)
	cookie.Value = strings.TrimSpace(value)
	if c.MaxAge > 0 {
		cookie.MaxAge = int(c.MaxAge / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the cookie.
func (c Cookie) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	cookie := c.base(r)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (c Cookie) base(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, c.Policy),
		SameSite: http.SameSiteLaxMode,
	}
}
