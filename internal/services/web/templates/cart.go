package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/cart"
	"github.com/arvana/storefront/internal/storefront/wishlist"
)

// CartPage renders the cart drawer as a page.
func CartPage(snapshot cart.Snapshot, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="container cart" id="cart">`)
		if snapshot.Empty() {
			h.raw(`<div class="empty-state"><h3>`)
			h.text(T(loc, "web.cart.empty_title"))
			h.raw("</h3><p>")
			h.text(T(loc, "web.cart.empty_copy"))
			h.raw(`</p><a class="button" href="/products">`)
			h.text(T(loc, "web.cart.continue_shopping"))
			h.raw("</a></div></section>")
			return
		}

		h.raw(`<ul class="cart-lines">`)
		for _, line := range snapshot.Lines() {
			writeCartLine(h, line, loc)
		}
		h.raw(`</ul><div class="cart-summary"><p class="cart-count">`)
		h.text(T(loc, "web.cart.item_count", snapshot.Count()))
		h.raw(`</p><p class="cart-total"><span>`)
		h.text(T(loc, "web.cart.total"))
		h.raw(`</span> <strong id="cart-total">`)
		h.text(Money(snapshot.Total()))
		h.raw(`</strong></p><button type="button" class="button button-wide" disabled>`)
		h.text(T(loc, "web.cart.checkout"))
		h.raw(`</button><a class="link-button" href="/products">`)
		h.text(T(loc, "web.cart.continue_shopping"))
		h.raw("</a>")
		h.postButton(routepath.CartClear, "link-button danger", T(loc, "web.cart.clear"), nil)
		h.raw("</div></section>")
	})
}

func writeCartLine(h *html, line cart.Line, loc Localizer) {
	h.raw(`<li class="cart-line"`)
	h.attr("data-line-id", line.ID)
	h.raw("><img")
	h.href("src", line.Product.Image)
	h.attr("alt", line.Product.Name)
	h.raw(` width="80" height="80"><div class="cart-line-info"><h3><a`)
	h.href("href", routepath.Product(line.Product.ID))
	h.raw(">")
	h.text(line.Product.Name)
	h.raw(`</a></h3><p class="cart-line-options">`)
	h.text(T(loc, "web.cart.options", line.Size, line.Color))
	h.raw(`</p><p class="price">`)
	h.text(Money(line.Product.Price))
	h.raw(`</p></div><div class="quantity">`)
	h.postButton(routepath.CartItemQuantity(line.ID), "quantity-step", "−", map[string]string{
		"quantity": strconv.Itoa(line.Quantity - 1),
	})
	h.raw(`<span class="quantity-value">`)
	h.text(strconv.Itoa(line.Quantity))
	h.raw("</span>")
	h.postButton(routepath.CartItemQuantity(line.ID), "quantity-step", "+", map[string]string{
		"quantity": strconv.Itoa(line.Quantity + 1),
	})
	h.raw(`</div><p class="cart-line-subtotal">`)
	h.text(Money(line.Subtotal()))
	h.raw("</p>")
	h.postButton(routepath.CartItemRemove(line.ID), "link-button danger", T(loc, "web.cart.remove"), nil)
	h.raw("</li>")
}

// WishlistPage renders the saved products of a visitor.
func WishlistPage(entries []wishlist.Entry, loading bool, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="container wishlist" id="wishlist"`)
		if loading {
			h.raw(` aria-busy="true"`)
		}
		h.raw(">")
		if len(entries) == 0 {
			h.raw(`<div class="empty-state"><h3>`)
			h.text(T(loc, "web.wishlist.empty_title"))
			h.raw("</h3><p>")
			h.text(T(loc, "web.wishlist.empty_copy"))
			h.raw(`</p><a class="button" href="/products">`)
			h.text(T(loc, "web.cart.continue_shopping"))
			h.raw("</a></div></section>")
			return
		}
		h.raw(`<ul class="wishlist-entries">`)
		for _, entry := range entries {
			p := entry.Product
			h.raw(`<li class="wishlist-entry"`)
			h.attr("data-product-id", p.ID)
			h.raw("><img")
			h.href("src", p.Image)
			h.attr("alt", p.Name)
			h.raw(` width="96" height="96"><div class="wishlist-info"><h3><a`)
			h.href("href", routepath.Product(p.ID))
			h.raw(">")
			h.text(p.Name)
			h.raw("</a></h3>")
			writePrice(h, p)
			h.raw(`</div><div class="wishlist-actions">`)
			h.postButton(routepath.WishlistItemMove(p.ID), "button button-small", T(loc, "web.wishlist.move_to_cart"), nil)
			h.postButton(routepath.WishlistItemRemove(p.ID), "link-button danger", T(loc, "web.wishlist.remove"), nil)
			h.raw("</div></li>")
		}
		h.raw("</ul></section>")
	})
}
