package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	module "github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// MainHeader is the optional heading rendered above page content.
type MainHeader struct {
	Title    string
	Subtitle string
}

// Page carries per-request layout inputs.
type Page struct {
	Title       string
	Lang        string
	CurrentPath string
	Search      string
	Header      *MainHeader
}

func (p Page) returnTo() string {
	return routepath.SafeReturn(p.CurrentPath, routepath.Root)
}

// Layout renders the full document around the children in ctx.
func Layout(page Page, viewer module.Viewer, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<meta name=\"description\"")
		h.attr("content", T(loc, "web.meta.description"))
		h.raw(">")
		writeTitle(h, page.Title, loc)
		h.raw(`<link rel="stylesheet" href="/static/site.css">`)
		h.raw(`<script defer src="` + htmxScriptURL + `"></script>`)
		h.raw(`<script defer src="/static/site.js"></script>`)
		h.raw(`</head><body hx-boost="true" hx-target="#main" hx-swap="outerHTML">`)
		writeSiteHeader(h, page, viewer, loc, false)
		writeNotices(h, page, viewer.Notices, loc, false)
		writeMain(ctx, h, page)
		writeFooter(h, loc)
		h.raw("</body></html>")
	})
}

// MainContent renders the HTMX swap payload: the main region plus
// out-of-band updates for the header and notifications.
func MainContent(page Page, viewer module.Viewer, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		writeTitle(h, page.Title, loc)
		writeMain(ctx, h, page)
		writeSiteHeader(h, page, viewer, loc, true)
		writeNotices(h, page, viewer.Notices, loc, true)
	})
}

// Notices renders only the notification region.
func Notices(page Page, notices []module.Notice, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		writeNotices(h, page, notices, loc, false)
	})
}

func writeTitle(h *html, title string, loc Localizer) {
	brand := T(loc, "web.brand")
	h.raw("<title>")
	if title = strings.TrimSpace(title); title != "" {
		h.text(title + " | " + brand)
	} else {
		h.text(brand)
	}
	h.raw("</title>")
}

func writeMain(ctx context.Context, h *html, page Page) {
	h.raw(`<main id="main" class="main">`)
	if page.Header != nil {
		h.raw(`<header class="page-header"><h1>`)
		h.text(page.Header.Title)
		h.raw("</h1>")
		if page.Header.Subtitle != "" {
			h.raw(`<p class="page-subtitle">`)
			h.text(page.Header.Subtitle)
			h.raw("</p>")
		}
		h.raw("</header>")
	}
	h.render(ctx, templ.GetChildren(ctx))
	h.raw("</main>")
}

func writeSiteHeader(h *html, page Page, viewer module.Viewer, loc Localizer, oob bool) {
	h.raw(`<header id="site-header" class="site-header"`)
	if oob {
		h.raw(` hx-swap-oob="true"`)
	}
	h.raw(`><div class="container header-row">`)
	h.raw(`<a class="logo" href="/">`)
	h.text(T(loc, "web.brand"))
	h.raw("</a>")

	h.raw(`<nav class="primary-nav" aria-label="`)
	h.text(T(loc, "web.nav.label"))
	h.raw(`">`)
	writeNavLink(h, page.CurrentPath, routepath.Root, T(loc, "web.nav.home"))
	writeNavLink(h, page.CurrentPath, routepath.Products, T(loc, "web.nav.shop"))
	writeNavLink(h, page.CurrentPath, routepath.About, T(loc, "web.nav.about"))
	writeNavLink(h, page.CurrentPath, routepath.Contact, T(loc, "web.nav.contact"))
	if viewer.SignedIn {
		writeNavLink(h, page.CurrentPath, routepath.Admin, T(loc, "web.nav.admin"))
	}
	h.raw("</nav>")

	h.raw(`<form class="header-search" method="get" action="/products" role="search"><input type="search" name="q"`)
	h.attr("value", page.Search)
	h.attr("placeholder", T(loc, "web.nav.search_placeholder"))
	h.attr("aria-label", T(loc, "web.nav.search_placeholder"))
	h.raw("></form>")

	h.raw(`<div class="header-actions">`)
	writeBadgeLink(h, routepath.Wishlist, "wishlist-count", T(loc, "web.nav.wishlist"), viewer.WishlistCount)
	writeBadgeLink(h, routepath.Cart, "cart-count", T(loc, "web.nav.cart"), viewer.CartCount)
	if viewer.SignedIn {
		h.raw(`<span class="account">`)
		if viewer.AvatarURL != "" {
			h.raw(`<img class="avatar" width="32" height="32" alt=""`)
			h.href("src", viewer.AvatarURL)
			h.raw(">")
		}
		h.raw(`<span class="account-name">`)
		h.text(viewer.DisplayName)
		h.raw("</span>")
		h.postButton(routepath.Logout, "link-button", T(loc, "web.nav.sign_out"), nil)
		h.raw("</span>")
	} else {
		h.raw(`<a class="button button-small" href="/login">`)
		h.text(T(loc, "web.nav.sign_in"))
		h.raw("</a>")
	}
	h.raw("</div></div></header>")
}

func writeNavLink(h *html, current, target, label string) {
	h.raw("<a")
	h.href("href", target)
	if isActivePath(current, target) {
		h.raw(` class="active" aria-current="page"`)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

func isActivePath(current, target string) bool {
	if target == routepath.Root {
		return current == routepath.Root
	}
	return current == target || strings.HasPrefix(current, target+"/")
}

func writeBadgeLink(h *html, target, id, label string, count int) {
	h.raw(`<a class="badge-link"`)
	h.href("href", target)
	h.raw(">")
	h.text(label)
	h.raw(`<span class="badge"`)
	h.attr("id", id)
	if count == 0 {
		h.raw(" hidden")
	}
	h.raw(">")
	h.text(strconv.Itoa(count))
	h.raw("</span></a>")
}

func writeNotices(h *html, page Page, notices []module.Notice, loc Localizer, oob bool) {
	h.raw(`<div id="notifications" class="notifications" aria-live="polite"`)
	if oob {
		h.raw(` hx-swap-oob="true"`)
	}
	h.raw(">")
	for _, notice := range notices {
		h.raw(`<div role="status"`)
		h.attr("class", "notice notice-"+notice.Kind)
		h.attr("data-notice-id", notice.ID)
		h.raw(`><div class="notice-body"><strong>`)
		h.text(notice.Title)
		h.raw("</strong>")
		if notice.Message != "" {
			h.raw("<p>")
			h.text(notice.Message)
			h.raw("</p>")
		}
		h.raw("</div>")
		h.postButton(routepath.NotificationDismiss(notice.ID), "notice-dismiss", T(loc, "web.notifications.dismiss"), map[string]string{
			httpx.ReturnToField: page.returnTo(),
		})
		h.raw("</div>")
	}
	h.raw("</div>")
}

func writeFooter(h *html, loc Localizer) {
	h.raw(`<footer class="site-footer"><div class="container footer-grid"><div><p class="logo">`)
	h.text(T(loc, "web.brand"))
	h.raw("</p><p>")
	h.text(T(loc, "web.footer.tagline"))
	h.raw(`</p></div><nav class="footer-links">`)
	writeNavLink(h, "", routepath.Products, T(loc, "web.nav.shop"))
	writeNavLink(h, "", routepath.About, T(loc, "web.nav.about"))
	writeNavLink(h, "", routepath.Contact, T(loc, "web.nav.contact"))
	h.raw(`</nav></div><p class="container copyright">`)
	h.text(T(loc, "web.footer.copyright"))
	h.raw("</p></footer>")
}
