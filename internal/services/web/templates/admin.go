package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/activity"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/contact"
)

// Admin dashboard tabs.
const (
	AdminTabDashboard = "dashboard"
	AdminTabProducts  = "products"
	AdminTabMessages  = "messages"
)

// AdminView feeds the read-only admin dashboard.
type AdminView struct {
	Tab        string
	Stats      activity.Stats
	Query      string
	Products   []catalog.Product
	Categories []catalog.CategoryCount
	Messages   []contact.Message
}

// AdminPage renders the dashboard for the selected tab.
func AdminPage(view AdminView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div class="container admin"><nav class="admin-tabs">`)
		for _, tab := range []struct{ id, key string }{
			{id: AdminTabDashboard, key: "web.admin.tab_dashboard"},
			{id: AdminTabProducts, key: "web.admin.tab_products"},
			{id: AdminTabMessages, key: "web.admin.tab_messages"},
		} {
			h.raw("<a")
			h.href("href", routepath.Admin+"?tab="+tab.id)
			if tab.id == view.Tab {
				h.raw(` class="active" aria-current="page"`)
			}
			h.raw(">")
			h.text(T(loc, tab.key))
			if tab.id == AdminTabMessages && view.Stats.PendingMessages > 0 {
				h.raw(` <span class="badge">`)
				h.text(strconv.Itoa(view.Stats.PendingMessages))
				h.raw("</span>")
			}
			h.raw("</a>")
		}
		h.raw("</nav>")

		switch view.Tab {
		case AdminTabProducts:
			writeAdminProducts(h, view, loc)
		case AdminTabMessages:
			writeAdminMessages(h, view.Messages, view.Stats.PendingMessages, loc)
		default:
			writeAdminDashboard(h, view, loc)
		}
		h.raw("</div>")
	})
}

func writeAdminDashboard(h *html, view AdminView, loc Localizer) {
	stats := view.Stats
	h.raw(`<section class="stats-grid">`)
	writeStat(h, T(loc, "web.admin.total_products"), strconv.Itoa(stats.TotalProducts))
	writeStat(h, T(loc, "web.admin.total_orders"), T(loc, "web.admin.number", stats.TotalOrders))
	writeStat(h, T(loc, "web.admin.total_revenue"), Money(stats.TotalRevenue))
	writeStat(h, T(loc, "web.admin.total_customers"), T(loc, "web.admin.number", stats.TotalCustomers))
	writeStat(h, T(loc, "web.admin.pending_messages"), strconv.Itoa(stats.PendingMessages))
	h.raw("</section>")

	live := stats.Live
	h.raw(`<section class="card live-activity"><h2>`)
	h.text(T(loc, "web.admin.live_title"))
	h.raw("</h2><dl>")
	for _, row := range []struct {
		key   string
		value int
	}{
		{key: "web.admin.live_cart_additions", value: live.CartAdditions},
		{key: "web.admin.live_cart_clears", value: live.CartClears},
		{key: "web.admin.live_wishlist_adds", value: live.WishlistAdds},
		{key: "web.admin.live_wishlist_moves", value: live.WishlistMoves},
		{key: "web.admin.live_sign_ins", value: live.SignIns},
		{key: "web.admin.live_sign_outs", value: live.SignOuts},
		{key: "web.admin.live_registrations", value: live.Registrations},
		{key: "web.admin.live_contact", value: live.ContactSubmissions},
	} {
		h.raw("<dt>")
		h.text(T(loc, row.key))
		h.raw("</dt><dd>")
		h.text(strconv.Itoa(row.value))
		h.raw("</dd>")
	}
	h.raw("</dl><p class=\"muted\">")
	if live.LastEventAt.IsZero() {
		h.text(T(loc, "web.admin.live_none"))
	} else {
		h.text(T(loc, "web.admin.live_last", live.LastEventAt.UTC().Format("2006-01-02 15:04:05 UTC")))
	}
	h.raw("</p></section>")

	recent := view.Products
	if len(recent) > 4 {
		recent = recent[:4]
	}
	h.raw(`<section class="card"><h2>`)
	h.text(T(loc, "web.admin.recent_products"))
	h.raw("</h2>")
	writeAdminProductTable(h, recent, view.Categories, loc)
	h.raw("</section>")
}

func writeStat(h *html, label, value string) {
	h.raw(`<div class="stat card"><span>`)
	h.text(label)
	h.raw("</span><strong>")
	h.text(value)
	h.raw("</strong></div>")
}

func writeAdminProducts(h *html, view AdminView, loc Localizer) {
	h.raw(`<section class="card"><form method="get" action="/admin" class="admin-search" role="search">`)
	h.hiddenField("tab", AdminTabProducts)
	h.raw(`<input type="search" name="q"`)
	h.attr("value", view.Query)
	h.attr("placeholder", T(loc, "web.admin.search_products"))
	h.attr("aria-label", T(loc, "web.admin.search_products"))
	h.raw(`><button type="submit" class="button button-small">`)
	h.text(T(loc, "web.admin.search"))
	h.raw(`</button></form><p class="result-count">`)
	h.text(T(loc, "web.admin.product_count", len(view.Products), view.Stats.TotalProducts))
	h.raw("</p>")
	writeAdminProductTable(h, view.Products, view.Categories, loc)
	h.raw("</section>")
}

func writeAdminProductTable(h *html, products []catalog.Product, categories []catalog.CategoryCount, loc Localizer) {
	if len(products) == 0 {
		h.raw(`<p class="empty-state">`)
		h.text(T(loc, "web.products.empty_title"))
		h.raw("</p>")
		return
	}
	h.raw(`<table class="admin-table"><thead><tr><th>`)
	h.text(T(loc, "web.admin.col_product"))
	h.raw("</th><th>")
	h.text(T(loc, "web.admin.col_category"))
	h.raw("</th><th>")
	h.text(T(loc, "web.admin.col_price"))
	h.raw("</th><th>")
	h.text(T(loc, "web.admin.col_rating"))
	h.raw("</th></tr></thead><tbody>")
	for _, p := range products {
		h.raw(`<tr><td><a`)
		h.href("href", routepath.Product(p.ID))
		h.raw(">")
		h.text(p.Name)
		h.raw("</a></td><td>")
		h.text(categoryName(p.Category, categories))
		h.raw("</td><td>")
		h.text(Money(p.Price))
		h.raw("</td><td>")
		h.text(strconv.FormatFloat(p.Rating, 'f', 1, 64))
		h.raw("</td></tr>")
	}
	h.raw("</tbody></table>")
}

func writeAdminMessages(h *html, messages []contact.Message, unread int, loc Localizer) {
	h.raw(`<section class="card"><h2>`)
	h.text(T(loc, "web.admin.messages_title"))
	h.raw(`</h2><p class="result-count">`)
	h.text(T(loc, "web.admin.unread_count", unread))
	h.raw("</p>")
	if len(messages) == 0 {
		h.raw(`<p class="empty-state">`)
		h.text(T(loc, "web.admin.messages_empty"))
		h.raw("</p></section>")
		return
	}
	h.raw(`<ul class="messages">`)
	for _, message := range messages {
		h.raw(`<li`)
		h.attr("class", "message message-"+string(message.Status))
		h.attr("data-message-id", message.ID)
		h.raw(`><header><strong>`)
		h.text(message.Name)
		h.raw(`</strong> <a`)
		h.href("href", "mailto:"+message.Email)
		h.raw(">")
		h.text(message.Email)
		h.raw(`</a> <time`)
		h.attr("datetime", message.ReceivedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
		h.raw(">")
		h.text(message.ReceivedAt.UTC().Format("2006-01-02"))
		h.raw("</time>")
		if message.Status == contact.StatusUnread {
			h.raw(` <span class="tag tag-new">`)
			h.text(T(loc, "web.admin.unread"))
			h.raw("</span>")
		}
		h.raw(`</header><p class="message-subject">`)
		h.text(message.Subject)
		h.raw("</p><p>")
		h.text(message.Message)
		h.raw("</p></li>")
	}
	h.raw("</ul></section>")
}
