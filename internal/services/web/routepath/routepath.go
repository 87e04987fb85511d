// Package routepath stores canonical HTTP paths for storefront modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"
	Static = "/static/"

	Products              = "/products"
	ProductsPrefix        = "/products/"
	ProductsCart          = "/products/cart"
	ProductImages         = "/products/productImages/"
	ProductReviewsPattern = ProductsPrefix + "{key}/reviews"

	Login       = "/login"
	LoginPrefix = "/login/"

	Admin        = "/admin"
	AdminPrefix  = "/admin/"
	AdminSale    = "/admin/sale"
	AdminSaleEnd = "/admin/sale/end"
	Logout       = "/admin/logout"

	Cart         = "/cart"
	CartPrefix   = "/cart/"
	CartCheckout = "/cart/checkout"
	CartConfirm  = "/cart/checkout/confirm"
	CartCancel   = "/cart/checkout/cancel"
	CartClear    = "/cart/clear"

	Contact       = "/contact"
	ContactPrefix = "/contact/"
)

// ProductReviews returns the review dialog route for a product key.
func ProductReviews(key string) string {
	return ProductsPrefix + escapeSegment(key) + "/reviews"
}

// ProductImage returns the image route for a file name. A blank name has
// no route, so callers can leave the image out.
func ProductImage(name string) string {
	name = escapeSegment(name)
	if name == "" {
		return ""
	}
	return ProductImages + name
}

// Area classifies a request path for logs: "admin", "static", "images"
// or "store".
func Area(path string) string {
	switch {
	case path == Admin || strings.HasPrefix(path, AdminPrefix):
		return "admin"
	case strings.HasPrefix(path, Static):
		return "static"
	case strings.HasPrefix(path, ProductImages):
		return "images"
	default:
		return "store"
	}
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
