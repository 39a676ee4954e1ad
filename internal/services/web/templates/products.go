package templates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/browse"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/shopspring/decimal"
)

// ProductCard is one product tile.
type ProductCard struct {
	Product    catalog.Product
	InWishlist bool
}

// HomeView feeds the home page.
type HomeView struct {
	Categories []catalog.CategoryCount
	Criteria   browse.Criteria
	Products   []ProductCard
	// Matching counts every product that matched before the showcase limit.
	Matching int
}

// ProductsView feeds the all-products page.
type ProductsView struct {
	Categories []catalog.CategoryCount
	Criteria   browse.Criteria
	Products   []ProductCard
	Total      int
}

// ProductDetailView feeds the product detail page.
type ProductDetailView struct {
	Product    catalog.Product
	InWishlist bool
	Related    []ProductCard
}

// Money formats a price for display.
func Money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func categoryName(category catalog.Category, counts []catalog.CategoryCount) string {
	for _, count := range counts {
		if count.ID == category {
			return count.Name
		}
	}
	return string(category)
}

// HomePage renders the landing page.
func HomePage(view HomeView, currentPath string, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<section class="hero"><div class="container"><p class="eyebrow">`)
		h.text(T(loc, "web.home.eyebrow"))
		h.raw("</p><h1>")
		h.text(T(loc, "web.home.hero_title"))
		h.raw(`</h1><p class="hero-copy">`)
		h.text(T(loc, "web.home.hero_copy"))
		h.raw(`</p><a class="button" href="/products">`)
		h.text(T(loc, "web.home.shop_collection"))
		h.raw("</a></div></section>")

		h.raw(`<section class="container collections"><h2>`)
		h.text(T(loc, "web.home.collections_title"))
		h.raw("</h2><p>")
		h.text(T(loc, "web.home.collections_copy"))
		h.raw(`</p><div class="collection-grid">`)
		for _, category := range view.Categories {
			if category.ID == catalog.CategoryAll {
				continue
			}
			h.raw(`<a class="collection-card"`)
			h.href("href", routepath.ProductsWithQuery(browse.Criteria{}.WithCategory(category.ID).Values()))
			h.raw("><h3>")
			h.text(category.Name)
			h.raw("</h3><span>")
			h.text(T(loc, "web.home.collection_count", category.Count))
			h.raw("</span></a>")
		}
		h.raw("</div></section>")

		h.raw(`<section class="container showcase"><div class="section-heading"><h2>`)
		if view.Criteria.Category == catalog.CategoryAll || view.Criteria.Category == "" {
			h.text(T(loc, "web.products.all_products"))
		} else {
			h.text(categoryName(view.Criteria.Category, view.Categories))
		}
		h.raw("</h2></div>")
		writeCategoryPills(h, routepath.Root, view.Categories, view.Criteria)
		writeProductGrid(h, view.Products, currentPath, loc)
		h.raw(`<div class="discover-more"><h3>`)
		h.text(T(loc, "web.home.discover_title"))
		h.raw("</h3><p>")
		h.text(T(loc, "web.home.discover_copy"))
		h.raw(`</p><a class="button"`)
		h.href("href", routepath.ProductsWithQuery(view.Criteria.Values()))
		h.raw(">")
		h.text(T(loc, "web.home.discover_action", view.Matching))
		h.raw("</a></div></section>")
	})
}

func writeCategoryPills(h *html, base string, counts []catalog.CategoryCount, criteria browse.Criteria) {
	h.raw(`<nav class="category-pills">`)
	for _, count := range counts {
		target := base
		if encoded := criteria.WithCategory(count.ID).Values().Encode(); encoded != "" {
			target += "?" + encoded
		}
		h.raw("<a")
		h.href("href", target)
		class := "pill"
		if count.ID == criteria.Category {
			class += " active"
		}
		h.attr("class", class)
		h.raw(">")
		h.text(count.Name)
		h.raw(` <span class="pill-count">`)
		h.text(strconv.Itoa(count.Count))
		h.raw("</span></a>")
	}
	h.raw("</nav>")
}

func writeProductGrid(h *html, cards []ProductCard, currentPath string, loc Localizer) {
	writeProductListing(h, cards, browse.ViewGrid, currentPath, loc)
}

func writeProductListing(h *html, cards []ProductCard, view browse.ViewMode, currentPath string, loc Localizer) {
	if len(cards) == 0 {
		h.raw(`<div class="empty-state"><h3>`)
		h.text(T(loc, "web.products.empty_title"))
		h.raw("</h3><p>")
		h.text(T(loc, "web.products.empty_copy"))
		h.raw("</p></div>")
		return
	}
	if view == browse.ViewList {
		h.raw(`<div class="product-list">`)
	} else {
		h.raw(`<div class="product-grid">`)
	}
	for _, card := range cards {
		writeProductCard(h, card, currentPath, loc)
	}
	h.raw("</div>")
}

func writeProductCard(h *html, card ProductCard, currentPath string, loc Localizer) {
	p := card.Product
	h.raw(`<article class="product-card"`)
	h.attr("data-product-id", p.ID)
	h.raw(`><a class="product-media"`)
	h.href("href", routepath.Product(p.ID))
	h.raw(`><img loading="lazy"`)
	h.href("src", p.Image)
	h.attr("alt", p.Name)
	h.raw(">")
	writeProductBadges(h, p, loc)
	h.raw("</a>")
	writeWishlistToggle(h, p.ID, card.InWishlist, currentPath, loc)
	h.raw(`<div class="product-info"><h3><a`)
	h.href("href", routepath.Product(p.ID))
	h.raw(">")
	h.text(p.Name)
	h.raw("</a></h3>")
	writeRating(h, p, loc)
	writePrice(h, p)
	h.raw("</div></article>")
}

func writeProductBadges(h *html, p catalog.Product, loc Localizer) {
	if p.IsNew {
		h.raw(`<span class="tag tag-new">`)
		h.text(T(loc, "web.products.badge_new"))
		h.raw("</span>")
	}
	if p.IsSale {
		h.raw(`<span class="tag tag-sale">`)
		h.text(T(loc, "web.products.badge_sale"))
		h.raw("</span>")
	}
}

func writeWishlistToggle(h *html, productID string, inWishlist bool, currentPath string, loc Localizer) {
	label := T(loc, "web.wishlist.add")
	class := "wishlist-toggle"
	if inWishlist {
		label = T(loc, "web.wishlist.remove")
		class += " active"
	}
	h.postButton(routepath.WishlistItemToggle(productID), class, label, map[string]string{
		httpx.ReturnToField: routepath.SafeReturn(currentPath, routepath.Products),
	})
}

func writeRating(h *html, p catalog.Product, loc Localizer) {
	h.raw(`<p class="rating"><span class="stars"`)
	h.attr("aria-label", T(loc, "web.products.rating_label", p.Rating))
	h.raw(">")
	h.text(stars(p.Rating))
	h.raw(`</span> <span class="reviews">`)
	h.text(T(loc, "web.products.reviews", p.Reviews))
	h.raw("</span></p>")
}

func stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	out := ""
	for i := 0; i < 5; i++ {
		if i < full {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}

func writePrice(h *html, p catalog.Product) {
	h.raw(`<p class="price"><span class="price-current">`)
	h.text(Money(p.Price))
	h.raw("</span>")
	if p.Discounted() {
		h.raw(` <s class="price-original">`)
		h.text(Money(p.OriginalPrice.Decimal))
		h.raw("</s>")
	}
	h.raw("</p>")
}

// ProductsPage renders the all-products catalog with filters.
func ProductsPage(view ProductsView, currentPath string, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="container shop-layout"><aside class="filters"><form method="get" action="/products" class="filter-form">`)
		h.raw(`<label class="field"><span>`)
		h.text(T(loc, "web.products.filter_search"))
		h.raw(`</span><input type="search"`)
		h.attr("name", browse.ParamSearch)
		h.attr("value", view.Criteria.Search)
		h.attr("placeholder", T(loc, "web.nav.search_placeholder"))
		h.raw("></label>")

		h.raw(`<fieldset class="field"><legend>`)
		h.text(T(loc, "web.products.filter_category"))
		h.raw("</legend>")
		for _, count := range view.Categories {
			h.raw(`<label class="radio"><input type="radio"`)
			h.attr("name", browse.ParamCategory)
			h.attr("value", string(count.ID))
			if count.ID == view.Criteria.Category {
				h.raw(" checked")
			}
			h.raw("> ")
			h.text(count.Name)
			h.raw(` <span class="pill-count">`)
			h.text(strconv.Itoa(count.Count))
			h.raw("</span></label>")
		}
		h.raw("</fieldset>")

		h.raw(`<fieldset class="field price-range"><legend>`)
		h.text(T(loc, "web.products.filter_price"))
		h.raw(`</legend><input type="number" min="0" step="1"`)
		h.attr("name", browse.ParamMin)
		h.attr("placeholder", T(loc, "web.products.filter_min"))
		if view.Criteria.PriceMin.IsPositive() {
			h.attr("value", view.Criteria.PriceMin.String())
		}
		h.raw(`><input type="number" min="0" step="1"`)
		h.attr("name", browse.ParamMax)
		h.attr("placeholder", T(loc, "web.products.filter_max"))
		if view.Criteria.PriceMax.Valid {
			h.attr("value", view.Criteria.PriceMax.Decimal.String())
		}
		h.raw("></fieldset>")

		h.raw(`<label class="field"><span>`)
		h.text(T(loc, "web.products.sort_label"))
		h.raw(`</span><select`)
		h.attr("name", browse.ParamSort)
		h.raw(">")
		for _, key := range browse.SortOptions() {
			h.raw("<option")
			h.attr("value", string(key))
			if key == view.Criteria.Sort {
				h.raw(" selected")
			}
			h.raw(">")
			h.text(SortLabel(key, loc))
			h.raw("</option>")
		}
		h.raw(`</select></label>`)
		if view.Criteria.View == browse.ViewList {
			h.hiddenField(browse.ParamView, string(browse.ViewList))
		}
		h.raw(`<button type="submit" class="button">`)
		h.text(T(loc, "web.products.apply_filters"))
		h.raw(`</button> <a class="link-button" href="/products">`)
		h.text(T(loc, "web.products.clear_filters"))
		h.raw("</a></form></aside>")

		h.raw(`<section class="shop-results"><div class="results-bar"><p class="result-count">`)
		h.text(T(loc, "web.products.showing", len(view.Products), view.Total))
		h.raw("</p>")
		writeViewToggle(h, view.Criteria, loc)
		h.raw("</div>")
		writeProductListing(h, view.Products, view.Criteria.View, currentPath, loc)
		h.raw("</section></div>")
	})
}

func writeViewToggle(h *html, criteria browse.Criteria, loc Localizer) {
	h.raw(`<nav class="view-toggle"`)
	h.attr("aria-label", T(loc, "web.products.view_label"))
	h.raw(">")
	for _, option := range []struct {
		mode browse.ViewMode
		key  string
	}{
		{mode: browse.ViewGrid, key: "web.products.view_grid"},
		{mode: browse.ViewList, key: "web.products.view_list"},
	} {
		h.raw("<a")
		h.href("href", routepath.ProductsWithQuery(criteria.WithView(option.mode).Values()))
		class := "pill"
		if option.mode == criteria.View {
			class += " active"
		}
		h.attr("class", class)
		h.attr("data-view", viewName(option.mode))
		h.raw(">")
		h.text(T(loc, option.key))
		h.raw("</a>")
	}
	h.raw("</nav>")
}

func viewName(mode browse.ViewMode) string {
	if mode == browse.ViewList {
		return "list"
	}
	return "grid"
}

// SortLabel returns the display label of a sort key.
func SortLabel(key browse.SortKey, loc Localizer) string {
	switch key {
	case browse.SortPriceLow:
		return T(loc, "web.products.sort_price_low")
	case browse.SortPriceHigh:
		return T(loc, "web.products.sort_price_high")
	case browse.SortName:
		return T(loc, "web.products.sort_name")
	case browse.SortRating:
		return T(loc, "web.products.sort_rating")
	default:
		return T(loc, "web.products.sort_featured")
	}
}

// ProductDetailPage renders one product with its purchase form.
func ProductDetailPage(view ProductDetailView, currentPath string, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *html) {
		p := view.Product
		h.raw(`<div class="container product-detail"><div class="gallery">`)
		for i, image := range p.Gallery() {
			h.raw("<img")
			h.href("src", image)
			h.attr("alt", fmt.Sprintf("%s %d", p.Name, i+1))
			if i == 0 {
				h.raw(` class="gallery-primary"`)
			} else {
				h.raw(` class="gallery-thumb" loading="lazy"`)
			}
			h.raw(">")
		}
		h.raw(`</div><div class="detail-info">`)
		writeProductBadges(h, p, loc)
		h.raw("<h1>")
		h.text(p.Name)
		h.raw("</h1>")
		writeRating(h, p, loc)
		writePrice(h, p)
		if p.Discounted() {
			h.raw(`<p class="savings">`)
			h.text(T(loc, "web.products.savings", Money(p.Savings())))
			h.raw("</p>")
		}
		h.raw(`<p class="description">`)
		h.text(p.Description)
		h.raw("</p>")

		h.raw(`<form method="post" action="/cart/items" class="purchase-form">`)
		h.hiddenField("product_id", p.ID)
		h.hiddenField(httpx.ReturnToField, routepath.SafeReturn(currentPath, routepath.Products))
		writeOptionGroup(h, "size", T(loc, "web.products.size"), p.Sizes)
		writeOptionGroup(h, "color", T(loc, "web.products.color"), p.Colors)
		h.raw(`<button type="submit" class="button button-wide">`)
		h.text(T(loc, "web.products.add_to_cart"))
		h.raw("</button></form>")
		writeWishlistToggle(h, p.ID, view.InWishlist, currentPath, loc)
		h.raw("</div></div>")

		if len(view.Related) > 0 {
			h.raw(`<section class="container related"><h2>`)
			h.text(T(loc, "web.products.related"))
			h.raw("</h2>")
			writeProductGrid(h, view.Related, currentPath, loc)
			h.raw("</section>")
		}
	})
}

func writeOptionGroup(h *html, name, legend string, options []string) {
	h.raw(`<fieldset class="option-group"><legend>`)
	h.text(legend)
	h.raw("</legend>")
	for i, option := range options {
		h.raw(`<label class="option"><input type="radio" required`)
		h.attr("name", name)
		h.attr("value", option)
		if i == 0 {
			h.raw(" checked")
		}
		h.raw("><span>")
		h.text(option)
		h.raw("</span></label>")
	}
	h.raw("</fieldset>")
}
