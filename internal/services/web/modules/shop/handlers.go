package shop

import (
	"net/http"
	"strings"

	apperrors "github.com/arvana/storefront/internal/services/web/platform/errors"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/platform/webctx"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/browse"
	"github.com/arvana/storefront/internal/storefront/catalog"
)

// relatedLimit caps the same-category suggestions under a product.
const relatedLimit = 4

type handlers struct {
	modulehandler.Base
	catalog Catalog
}

func newHandlers(c Catalog, base modulehandler.Base) handlers {
	return handlers{Base: base, catalog: c}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	visitor, _ := webctx.RequestVisitor(r)
	products := h.catalog.Products()
	criteria := browse.ParseCriteria(r.URL.Query())
	view := webtemplates.ProductsView{
		Categories: h.catalog.Categories(),
		Criteria:   criteria,
		Products:   modulehandler.ProductCards(visitor, browse.Select(products, criteria)),
		Total:      len(products),
	}
	header := &webtemplates.MainHeader{
		Title:    webtemplates.T(loc, "web.title.products"),
		Subtitle: webtemplates.T(loc, "web.title.products_subtitle"),
	}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.ProductsPage(view, r.URL.RequestURI(), loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("productID"))
	product, ok := h.catalog.Lookup(productID)
	if !ok {
		h.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, webi18n.ErrorProductNotFound, "product not found: "+productID))
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	visitor, _ := webctx.RequestVisitor(r)
	view := webtemplates.ProductDetailView{
		Product: product,
		Related: modulehandler.ProductCards(visitor, related(h.catalog.Products(), product)),
	}
	if visitor != nil && visitor.Wishlist != nil {
		view.InWishlist = visitor.Wishlist.Contains(product.ID)
	}
	h.WritePage(w, r, product.Name, http.StatusOK, nil, webtemplates.ProductDetailPage(view, r.URL.RequestURI(), loc))
}

// related returns up to relatedLimit other products from the same category,
// in catalog order.
func related(products []catalog.Product, product catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, relatedLimit)
	for _, candidate := range products {
		if len(out) == relatedLimit {
			break
		}
		if candidate.ID == product.ID || candidate.Category != product.Category {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
