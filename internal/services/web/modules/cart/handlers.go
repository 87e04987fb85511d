package cart

import (
	"errors"
	"net/http"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	apperrors "github.com/dailyharvest/storefront/internal/services/web/platform/errors"
	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
	storecart "github.com/dailyharvest/storefront/internal/storefront/cart"
)

var errNoSession = errors.New("visitor session unavailable")

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) visitor(r *http.Request) (module.Visitor, error) {
	visitor := h.Visitor(r)
	if visitor.Cart == nil || visitor.Checkout == nil {
		return module.Visitor{}, errNoSession
	}
	return visitor, nil
}

// handleIndex renders the cart. A processed order is shown once and the
// flow returns to browsing.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc := h.PageLocalizer(r)
	view := webtemplates.CartView{Loc: loc, Phase: visitor.Checkout.Snapshot().Phase}
	if view.Phase == storecart.PhaseProcessed {
		snap, err := visitor.Checkout.Acknowledge()
		if err == nil {
			view.Order = snap.Order
		} else {
			view.Phase = storecart.PhaseBrowsing
		}
	}
	if view.Phase != storecart.PhaseProcessed {
		view.Items = visitor.Cart.Items()
		view.Total = visitor.Cart.Total()
	}
	h.WritePage(w, r, webtemplates.T(loc, "store.cart.title"), http.StatusOK, webtemplates.CartPage(view))
}

func (h handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if visitor.Cart.Len() == 0 {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "store.cart.empty", "checkout requested with an empty cart"))
		return
	}
	h.transition(w, r, visitor.Checkout.Request())
}

func (h handlers) handleConfirm(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.transition(w, r, visitor.Checkout.Confirm(visitor.Cart))
}

func (h handlers) handleCancel(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.transition(w, r, visitor.Checkout.Cancel())
}

// handleClear empties the cart and dismisses a pending confirmation.
func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	visitor.Cart.Clear()
	if visitor.Checkout.Snapshot().Phase == storecart.PhaseConfirmPending {
		_ = visitor.Checkout.Cancel()
	}
	h.RedirectWithNotice(w, r, routepath.Cart, flashnotice.Info("core.notice.cart_cleared"))
}

func (h handlers) transition(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case err == nil:
		httpx.WriteRedirect(w, r, routepath.Cart)
	case errors.Is(err, storecart.ErrInvalidTransition):
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindConflict, "", err))
	default:
		h.WriteError(w, r, err)
	}
}
