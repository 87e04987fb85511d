package products

import (
	"errors"
	"net/http"
	"strings"

	module "github.com/dailyharvest/storefront/internal/services/web/module"
	apperrors "github.com/dailyharvest/storefront/internal/services/web/platform/errors"
	flashnotice "github.com/dailyharvest/storefront/internal/services/web/platform/flash"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/modulehandler"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	webtemplates "github.com/dailyharvest/storefront/internal/services/web/templates"
	"github.com/dailyharvest/storefront/internal/storefront/catalog"
)

// loadingRefreshSeconds is how soon the loading page asks to be reloaded.
const loadingRefreshSeconds = 1

var errNoSession = errors.New("visitor session unavailable")

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// ensureCatalog starts or joins the visitor's catalog load.
func (h handlers) ensureCatalog(r *http.Request) (module.Visitor, catalog.View, error) {
	visitor := h.Visitor(r)
	if visitor.Catalog == nil || visitor.Cart == nil {
		return module.Visitor{}, catalog.View{}, errNoSession
	}
	deps := h.Deps()
	view := visitor.Catalog.Ensure(deps.CatalogSource, deps.CatalogResources, deps.CatalogLoadWait)
	return visitor, view, nil
}

func (h handlers) writeLoading(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WriteRefreshingPage(w, r, webtemplates.T(loc, "store.products.title"), loadingRefreshSeconds, webtemplates.ProductsLoading(loc, loadingRefreshSeconds))
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, view, err := h.ensureCatalog(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if view.State == catalog.StateLoading {
		h.writeLoading(w, r)
		return
	}
	loc := h.PageLocalizer(r)
	page := webtemplates.ProductsView{
		Loc:            loc,
		Products:       view.Products,
		PartialFailure: len(view.Failures) > 0 || view.State == catalog.StateIdle,
	}
	if panel := h.Deps().Sale; panel != nil && panel.Active() {
		page.SaleMessage = panel.Message()
	}
	h.WritePage(w, r, webtemplates.T(loc, "store.products.title"), http.StatusOK, webtemplates.ProductsPage(page))
}

func (h handlers) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	visitor, _, err := h.ensureCatalog(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	product, ok := visitor.Catalog.Product(strings.TrimSpace(r.FormValue("product")))
	if !ok {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindNotFound, "", catalog.ErrProductNotFound))
		return
	}
	if !product.InStock {
		h.WriteError(w, r, apperrors.EK(apperrors.KindConflict, "store.products.out_of_stock", "product out of stock"))
		return
	}
	visitor.Cart.Add(product)
	h.RedirectWithNotice(w, r, routepath.Products, flashnotice.Success("core.notice.added_to_cart"))
}

func (h handlers) handleReviews(w http.ResponseWriter, r *http.Request) {
	visitor, view, err := h.ensureCatalog(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if view.State == catalog.StateLoading {
		h.writeLoading(w, r)
		return
	}
	product, ok := visitor.Catalog.Product(r.PathValue("key"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	h.writeReviews(w, r, http.StatusOK, webtemplates.ReviewsView{Product: product})
}

func (h handlers) handleReviewSubmit(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	visitor, _, err := h.ensureCatalog(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	key := r.PathValue("key")
	author := r.FormValue("author")
	comment := r.FormValue("comment")
	_, err = visitor.Catalog.SubmitReview(key, author, comment, h.Deps().Clock()())
	switch {
	case err == nil:
		h.RedirectWithNotice(w, r, routepath.ProductReviews(key), flashnotice.Success("core.notice.review_saved"))
	case errors.Is(err, catalog.ErrProductNotFound):
		h.WriteNotFound(w, r)
	case errors.Is(err, catalog.ErrInvalidReview):
		product, ok := visitor.Catalog.Product(key)
		if !ok {
			h.WriteNotFound(w, r)
			return
		}
		h.writeReviews(w, r, http.StatusBadRequest, webtemplates.ReviewsView{
			Product: product,
			Author:  author,
			Comment: comment,
			Error:   webtemplates.T(h.PageLocalizer(r), "store.reviews.error_required"),
		})
	default:
		h.WriteError(w, r, err)
	}
}

func (h handlers) writeReviews(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ReviewsView) {
	loc := h.PageLocalizer(r)
	view.Loc = loc
	h.WritePage(w, r, webtemplates.T(loc, "store.reviews.heading", view.Product.Name), status, webtemplates.ReviewsDialog(view))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
