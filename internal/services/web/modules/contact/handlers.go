package contact

import (
	"errors"
	"net/http"

	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
	"github.com/dailyharvest/storefront/internal/storefront/contact"
)

var fieldErrorKeys = map[contact.Field]string{
	contact.FieldName:    "store.contact.error_name",
	contact.FieldEmail:   "store.contact.error_email",
	contact.FieldRequest: "store.contact.error_request",
}

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.writeForm(w, r, http.StatusOK, webtemplates.ContactView{})
}

// handleSubmit validates the form. Nothing is stored or sent; a valid
// submission is logged and acknowledged with the thank-you dialog.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	form, err := contact.Validate(contact.Form{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Request: r.FormValue("request"),
	})
	var verr *contact.ValidationError
	switch {
	case err == nil:
		h.Deps().Log().Printf("contact request received name=%q email=%q", form.Name, form.Email)
		h.writeForm(w, r, http.StatusOK, webtemplates.ContactView{Submitted: true})
	case errors.As(err, &verr):
		loc := h.PageLocalizer(r)
		fieldErrors := make(map[contact.Field]string, len(verr.Fields))
		for _, field := range verr.Fields {
			fieldErrors[field] = webtemplates.T(loc, fieldErrorKeys[field])
		}
		h.writeForm(w, r, http.StatusBadRequest, webtemplates.ContactView{Form: form, Errors: fieldErrors})
	default:
		h.WriteError(w, r, err)
	}
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ContactView) {
	loc := h.PageLocalizer(r)
	view.Loc = loc
	h.WritePage(w, r, webtemplates.T(loc, "store.contact.title"), status, webtemplates.ContactPage(view))
}
