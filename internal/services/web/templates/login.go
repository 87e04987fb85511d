package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

// LoginView is the admin login form.
type LoginView struct {
	Loc      Localizer
	Username string
	Password string
	Error    string
}

// LoginPage renders the login form with any rejection message.
func LoginPage(view LoginView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.open("section", "id", "login", "class", "login-container")
		m.element("h2", T(loc, "store.login.heading"))
		m.open("form", "method", "post", "action", routepath.Login, "class", "login-form")
		m.element("label", T(loc, "store.login.username"), "for", "username")
		m.open("input", "type", "text", "id", "username", "name", "username", "value", view.Username, "autocomplete", "username")
		m.element("label", T(loc, "store.login.password"), "for", "password")
		m.open("input", "type", "password", "id", "password", "name", "password", "value", view.Password, "autocomplete", "current-password")
		m.element("button", T(loc, "store.login.submit"), "type", "submit")
		m.close("form")
		if view.Error != "" {
			m.element("p", view.Error, "id", "login-error", "class", "error", "role", "alert")
		}
		m.close("section")
	})
}
