package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	"github.com/dailyharvest/storefront/internal/storefront/cart"
	"github.com/dailyharvest/storefront/internal/storefront/money"
)

// CartView is the cart page, including the checkout dialog state.
type CartView struct {
	Loc   Localizer
	Items []cart.Item
	Total float64
	Phase cart.Phase
	Order []cart.Item
}

// CartPage renders the live cart, the confirmation dialog, or the
// processed order depending on Phase.
func CartPage(view CartView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		if view.Phase == cart.PhaseProcessed {
			m.open("section", "id", "order-processed", "class", "order-processed-container")
			m.element("h2", T(loc, "store.checkout.processed"))
			itemGrid(m, loc, view.Order)
			m.element("p", T(loc, "store.cart.total", money.FormatPrice(money.CalculateTotal(view.Order))), "class", "cart-total")
			m.element("a", T(loc, "store.checkout.keep_shopping"), "href", routepath.Products)
			m.close("section")
			return
		}

		m.open("section", "id", "cart", "class", "cart-container")
		m.element("h2", T(loc, "store.cart.heading"))
		if len(view.Items) == 0 {
			m.element("p", T(loc, "store.cart.empty"), "class", "cart-empty")
		} else {
			itemGrid(m, loc, view.Items)
			m.element("p", T(loc, "store.cart.total", money.FormatPrice(view.Total)), "class", "cart-total")
			m.postButton(routepath.CartCheckout, T(loc, "store.cart.checkout"), "checkout-btn")
			m.postButton(routepath.CartClear, T(loc, "store.cart.clear"), "clear-btn")
		}
		m.close("section")

		if view.Phase == cart.PhaseConfirmPending {
			m.open("div", "id", "checkout-dialog", "class", "modal-backdrop")
			m.open("div", "class", "modal-content", "role", "dialog", "aria-labelledby", "checkout-heading")
			m.element("h2", T(loc, "store.checkout.confirm_heading"), "id", "checkout-heading")
			m.element("p", T(loc, "store.checkout.confirm_body"))
			m.postButton(routepath.CartConfirm, T(loc, "store.checkout.continue"), "confirm-btn")
			m.postButton(routepath.CartCancel, T(loc, "store.checkout.cancel"), "cancel-btn")
			m.close("div")
			m.close("div")
		}
	})
}

func itemGrid(m *markup, loc Localizer, items []cart.Item) {
	m.open("div", "class", "cart-items-grid")
	for _, item := range items {
		m.open("article", "class", "cart-item-card", "data-item", item.ID)
		if src := routepath.ProductImage(item.Image); src != "" {
			m.open("img", "src", src, "alt", item.Name, "class", "cart-item-image")
		}
		m.open("div", "class", "cart-item-info")
		m.element("h3", item.Name)
		m.element("p", T(loc, "store.cart.price", money.FormatPrice(item.Price)))
		m.element("p", T(loc, "store.cart.quantity", item.Quantity))
		m.close("div")
		m.close("article")
	}
	m.close("div")
}
