package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	"github.com/dailyharvest/storefront/internal/storefront/catalog"
	"github.com/dailyharvest/storefront/internal/storefront/money"
)

// ProductsView is the catalog grid.
type ProductsView struct {
	Loc            Localizer
	Products       []catalog.Product
	PartialFailure bool
	SaleMessage    string
}

// ProductsPage renders the catalog grid with its banners.
func ProductsPage(view ProductsView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		loc := view.Loc
		m.open("section", "id", "products", "class", "products")
		m.element("h2", T(loc, "store.products.heading"))
		if view.SaleMessage != "" {
			m.element("p", view.SaleMessage, "id", "sale-banner", "class", "banner banner-sale")
		}
		switch {
		case len(view.Products) == 0:
			m.element("p", T(loc, "store.products.empty"), "id", "catalog-error", "class", "banner banner-error", "role", "alert")
		case view.PartialFailure:
			m.element("p", T(loc, "store.products.partial_failure"), "id", "catalog-error", "class", "banner banner-error", "role", "alert")
		}
		m.open("div", "class", "product-grid")
		for _, product := range view.Products {
			productCard(m, loc, product)
		}
		m.close("div")
		m.close("section")
	})
}

func productCard(m *markup, loc Localizer, product catalog.Product) {
	key := product.Key()
	m.open("article", "class", "product-card", "data-product", key)
	if src := routepath.ProductImage(product.Image); src != "" {
		m.open("img", "src", src, "alt", product.Name, "class", "product-image")
	}
	m.element("h3", product.Name)
	m.element("p", money.FormatPrice(product.Price), "class", "price")
	if product.Description != "" {
		m.element("p", product.Description, "class", "description")
	}
	m.open("form", "method", "post", "action", routepath.ProductsCart)
	m.hiddenField("product", key)
	if product.InStock {
		m.element("button", T(loc, "store.products.add_to_cart"), "type", "submit", "class", "add-to-cart")
	} else {
		m.open("button", "type", "submit", "class", "add-to-cart", "disabled", "disabled")
		m.text(T(loc, "store.products.out_of_stock"))
		m.close("button")
	}
	m.close("form")
	m.element("a", T(loc, "store.products.reviews", len(product.Reviews)), "href", routepath.ProductReviews(key), "class", "reviews-link")
	m.close("article")
}

// ProductsLoading is shown while the catalog load is still running.
func ProductsLoading(loc Localizer, refreshSeconds int) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("section", "id", "products-loading", "class", "products", "aria-busy", "true", "data-refresh", strconv.Itoa(refreshSeconds))
		m.element("h2", T(loc, "store.products.heading"))
		m.element("p", T(loc, "store.products.loading"), "class", "loading")
		m.close("section")
	})
}

// ReviewsView is the review dialog for one product.
type ReviewsView struct {
	Loc     Localizer
	Product catalog.Product
	Author  string
	Comment string
	Error   string
}

// ReviewsDialog lists a product's reviews newest first with a form to add
// one. Comments pass through SanitizeComment; everything else is escaped.
func ReviewsDialog(view ReviewsView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		loc := view.Loc
		product := view.Product
		m.open("section", "id", "reviews-dialog", "class", "modal", "role", "dialog", "aria-labelledby", "reviews-heading")
		m.element("h2", T(loc, "store.reviews.heading", product.Name), "id", "reviews-heading")
		if len(product.Reviews) == 0 {
			m.element("p", T(loc, "store.reviews.none"))
		} else {
			m.open("ul", "class", "review-list")
			for _, review := range product.Reviews {
				m.open("li", "class", "review")
				m.element("strong", review.Author, "class", "review-author")
				m.element("time", review.Date, "datetime", review.Date)
				m.open("p", "class", "review-comment")
				m.component(ctx, sanitizedComment(review.Comment))
				m.close("p")
				m.close("li")
			}
			m.close("ul")
		}

		m.element("h3", T(loc, "store.reviews.leave"))
		if view.Error != "" {
			m.element("p", view.Error, "class", "error", "role", "alert")
		}
		m.open("form", "method", "post", "action", routepath.ProductReviews(product.Key()), "class", "review-form")
		m.open("input", "type", "text", "name", "author", "value", view.Author, "placeholder", T(loc, "store.reviews.author_placeholder"), "required", "required")
		m.open("textarea", "name", "comment", "rows", "4", "placeholder", T(loc, "store.reviews.comment_placeholder"), "required", "required")
		m.text(view.Comment)
		m.close("textarea")
		m.element("button", T(loc, "store.reviews.submit"), "type", "submit")
		m.close("form")
		m.element("a", T(loc, "store.reviews.close"), "href", routepath.Products, "class", "close-link")
		m.close("section")
	})
}
