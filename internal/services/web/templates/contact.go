package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	"github.com/dailyharvest/storefront/internal/storefront/contact"
)

// ContactView is the contact form and its thank-you dialog.
type ContactView struct {
	Loc       Localizer
	Form      contact.Form
	Errors    map[contact.Field]string
	Submitted bool
}

// ContactPage renders the form, field errors and, after a valid
// submission, the thank-you dialog.
func ContactPage(view ContactView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.open("section", "id", "contact", "class", "contact-container")
		m.element("h2", T(loc, "store.contact.heading"))
		m.open("form", "method", "post", "action", routepath.Contact, "class", "contact-form")

		field := func(name contact.Field, label string, input func()) {
			m.open("div", "class", "form-group")
			m.element("label", label, "for", string(name))
			input()
			if msg := view.Errors[name]; msg != "" {
				m.element("p", msg, "id", string(name)+"-error", "class", "error", "role", "alert")
			}
			m.close("div")
		}
		field(contact.FieldName, T(loc, "store.contact.name"), func() {
			m.open("input", "type", "text", "id", "name", "name", "name", "value", view.Form.Name, "required", "required")
		})
		field(contact.FieldEmail, T(loc, "store.contact.email"), func() {
			m.open("input", "type", "email", "id", "email", "name", "email", "value", view.Form.Email, "required", "required")
		})
		field(contact.FieldRequest, T(loc, "store.contact.request"), func() {
			m.open("textarea", "id", "request", "name", "request", "rows", "5", "required", "required")
			m.text(view.Form.Request)
			m.close("textarea")
		})
		m.element("button", T(loc, "store.contact.submit"), "type", "submit", "class", "submit-btn")
		m.close("form")
		m.close("section")

		if view.Submitted {
			m.open("div", "id", "contact-thanks", "class", "modal-backdrop")
			m.open("div", "class", "modal-content", "role", "dialog")
			m.element("p", T(loc, "store.contact.thanks"))
			m.element("a", T(loc, "store.contact.continue"), "href", routepath.Contact, "class", "continue-btn")
			m.close("div")
			m.close("div")
		}
	})
}
