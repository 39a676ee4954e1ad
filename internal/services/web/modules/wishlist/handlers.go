package wishlist

import (
	"net/http"
	"strings"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/session"
)

const fieldProductID = "product_id"

type handlers struct {
	modulehandler.Base
	products  ProductLookup
	publisher events.Publisher
}

func newHandlers(products ProductLookup, publisher events.Publisher, base modulehandler.Base) handlers {
	return handlers{Base: base, products: products, publisher: publisher}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	header := &webtemplates.MainHeader{Title: webtemplates.T(loc, "web.title.wishlist")}
	page := webtemplates.WishlistPage(visitor.Wishlist.Snapshot(), visitor.Wishlist.Loading(), loc)
	h.WritePage(w, r, header.Title, http.StatusOK, header, page)
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	h.withProduct(w, r, strings.TrimSpace(r.FormValue(fieldProductID)), func(visitor *session.Visitor, loc webtemplates.Localizer, product catalog.Product) {
		if err := visitor.Wishlist.Add(r.Context(), product); err != nil {
			h.NotifyFailure(visitor, loc, err)
			return
		}
		httpx.TriggerEvent(w, modulehandler.EventWishlistChanged)
		h.added(r, visitor, loc, product)
	})
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	h.withProduct(w, r, strings.TrimSpace(r.PathValue("productID")), func(visitor *session.Visitor, loc webtemplates.Localizer, product catalog.Product) {
		saved, err := visitor.Wishlist.Toggle(r.Context(), product)
		if err != nil {
			h.NotifyFailure(visitor, loc, err)
			return
		}
		httpx.TriggerEvent(w, modulehandler.EventWishlistChanged)
		if saved {
			h.added(r, visitor, loc, product)
			return
		}
		h.removed(visitor, loc)
	})
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	productID := strings.TrimSpace(r.PathValue("productID"))
	if err := visitor.Wishlist.Remove(r.Context(), productID); err != nil {
		h.NotifyFailure(visitor, loc, err)
	} else {
		httpx.TriggerEvent(w, modulehandler.EventWishlistChanged)
		h.removed(visitor, loc)
	}
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Wishlist))
}

func (h handlers) handleMove(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	productID := strings.TrimSpace(r.PathValue("productID"))
	line, err := visitor.Wishlist.MoveToCart(r.Context(), productID, visitor.Cart)
	if err != nil {
		h.NotifyFailure(visitor, loc, err)
		httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Wishlist))
		return
	}
	h.Notify(visitor, notify.KindSuccess,
		webtemplates.T(loc, webi18n.NoticeAddedToCartTitle),
		webtemplates.T(loc, webi18n.NoticeMovedToCartBody, line.Product.Name))
	modulehandler.Publish(r.Context(), h.publisher, visitor, events.Event{
		Type:     events.TypeWishlistMovedToCart,
		Subject:  line.Product.ID,
		Quantity: 1,
		Attributes: map[string]string{
			"line_id": line.ID,
			"size":    line.Size,
			"color":   line.Color,
		},
	})
	httpx.TriggerEvent(w, modulehandler.EventWishlistChanged)
	httpx.TriggerEvent(w, modulehandler.EventCartChanged)
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Wishlist))
}

// withProduct resolves the visitor and product, runs fn and redirects back.
// Unknown products become an error notification.
func (h handlers) withProduct(w http.ResponseWriter, r *http.Request, productID string, fn func(*session.Visitor, webtemplates.Localizer, catalog.Product)) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	if product, ok := h.products.Lookup(productID); ok {
		fn(visitor, loc, product)
	} else {
		h.Notify(visitor, notify.KindError, webtemplates.T(loc, webi18n.NoticeRequestFailedTitle), webtemplates.T(loc, webi18n.ErrorProductNotFound))
	}
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Wishlist))
}

func (h handlers) added(r *http.Request, visitor *session.Visitor, loc webtemplates.Localizer, product catalog.Product) {
	h.Notify(visitor, notify.KindSuccess,
		webtemplates.T(loc, webi18n.NoticeWishlistAddedTitle),
		webtemplates.T(loc, webi18n.NoticeWishlistAddedBody, product.Name))
	modulehandler.Publish(r.Context(), h.publisher, visitor, events.Event{
		Type:    events.TypeWishlistAdded,
		Subject: product.ID,
	})
}

func (h handlers) removed(visitor *session.Visitor, loc webtemplates.Localizer) {
	h.Notify(visitor, notify.KindInfo,
		webtemplates.T(loc, webi18n.NoticeWishlistRemovedTitle),
		webtemplates.T(loc, webi18n.NoticeWishlistRemovedBody))
}
