package cart

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	storecart "github.com/arvana/storefront/internal/storefront/cart"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/session"
)

// Form field names posted by the product detail and cart forms.
const (
	fieldProductID = "product_id"
	fieldSize      = "size"
	fieldColor     = "color"
	fieldQuantity  = "quantity"
)

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
	header := &webtemplates.MainHeader{Title: webtemplates.T(loc, "web.title.cart")}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.CartPage(visitor.Cart.Snapshot(), loc))
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	returnTo := httpx.ReturnPath(r, routepath.Cart)

	productID := strings.TrimSpace(r.FormValue(fieldProductID))
	product, ok := h.products.Lookup(productID)
	if !ok {
		h.Notify(visitor, notify.KindError, webtemplates.T(loc, webi18n.NoticeRequestFailedTitle), webtemplates.T(loc, webi18n.ErrorProductNotFound))
		httpx.WriteRedirect(w, r, returnTo)
		return
	}
	size := strings.TrimSpace(r.FormValue(fieldSize))
	color := strings.TrimSpace(r.FormValue(fieldColor))
	line, err := visitor.Cart.Add(product, size, color)
	if err != nil {
		h.NotifyFailure(visitor, loc, err)
		httpx.WriteRedirect(w, r, returnTo)
		return
	}

	h.Notify(visitor, notify.KindSuccess,
		webtemplates.T(loc, webi18n.NoticeAddedToCartTitle),
		webtemplates.T(loc, webi18n.NoticeAddedToCartBody, product.Name))
	modulehandler.Publish(r.Context(), h.publisher, visitor, events.Event{
		Type:     events.TypeCartLineAdded,
		Subject:  product.ID,
		Quantity: 1,
		Attributes: map[string]string{
			"line_id": line.ID,
			"size":    line.Size,
			"color":   line.Color,
		},
	})
	httpx.TriggerEvent(w, modulehandler.EventCartChanged)
	httpx.WriteRedirect(w, r, returnTo)
}

func (h handlers) handleQuantity(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	lineID := strings.TrimSpace(r.PathValue("lineID"))
	quantity, err := strconv.Atoi(strings.TrimSpace(r.FormValue(fieldQuantity)))
	if err != nil {
		h.NotifyFailure(visitor, loc, storecart.ErrInvalidQuantity)
		httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Cart))
		return
	}
	line, found := visitor.Cart.Snapshot().Line(lineID)
	if err := visitor.Cart.UpdateQuantity(lineID, quantity); err != nil {
		h.NotifyFailure(visitor, loc, err)
		httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Cart))
		return
	}
	if quantity == 0 && found {
		h.notifyRemoved(visitor, loc, line)
	}
	httpx.TriggerEvent(w, modulehandler.EventCartChanged)
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Cart))
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	lineID := strings.TrimSpace(r.PathValue("lineID"))
	line, found := visitor.Cart.Snapshot().Line(lineID)
	if err := visitor.Cart.Remove(lineID); err != nil {
		h.NotifyFailure(visitor, loc, err)
	} else {
		if found {
			h.notifyRemoved(visitor, loc, line)
		}
		httpx.TriggerEvent(w, modulehandler.EventCartChanged)
	}
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Cart))
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	count := visitor.Cart.Snapshot().Count()
	visitor.Cart.Clear()
	h.Notify(visitor, notify.KindInfo,
		webtemplates.T(loc, webi18n.NoticeCartClearedTitle),
		webtemplates.T(loc, webi18n.NoticeCartClearedBody))
	modulehandler.Publish(r.Context(), h.publisher, visitor, events.Event{
		Type:     events.TypeCartCleared,
		Quantity: count,
	})
	httpx.TriggerEvent(w, modulehandler.EventCartChanged)
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Cart))
}

func (h handlers) notifyRemoved(visitor *session.Visitor, loc webtemplates.Localizer, line storecart.Line) {
	h.Notify(visitor, notify.KindInfo,
		webtemplates.T(loc, webi18n.NoticeCartUpdatedTitle),
		webtemplates.T(loc, webi18n.NoticeCartItemRemovedBody, line.Product.Name))
}
