// Package browse selects and orders catalog products for the shop pages.
package browse

import (
	"net/url"
	"slices"
	"strings"

	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a product ordering.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
)

// SortOptions lists the orderings offered to shoppers, in display order.
func SortOptions() []SortKey {
	return []SortKey{SortNone, SortPriceLow, SortPriceHigh, SortName, SortRating}
}

// ViewMode names a product listing layout.
type ViewMode string

const (
	ViewGrid ViewMode = ""
	ViewList ViewMode = "list"
)

// Query parameter names used by ParseCriteria and Criteria.Values.
const (
	ParamCategory = "category"
	ParamSearch   = "q"
	ParamMin      = "min"
	ParamMax      = "max"
	ParamSort     = "sort"
	ParamView     = "view"
)

// Criteria describes one product selection. The zero value selects every
// product in catalog order.
type Criteria struct {
	Category catalog.Category
	Search   string
	PriceMin decimal.Decimal
	PriceMax decimal.NullDecimal
	Sort     SortKey
	// View only affects rendering; Select ignores it.
	View ViewMode
}

// Select filters products by category, search text and price range, then
// orders them by c.Sort. The search text is matched as typed, so any
// non-empty text filters, including whitespace. The input slice is never
// modified.
func Select(products []catalog.Product, c Criteria) []catalog.Product {
	folder := cases.Fold()
	needle := folder.String(c.Search)

	out := make([]catalog.Product, 0, len(products))
	for _, product := range products {
		if !matchesCategory(product, c.Category) {
			continue
		}
		if needle != "" && !matchesSearch(folder, product, needle) {
			continue
		}
		if !matchesPrice(product, c.PriceMin, c.PriceMax) {
			continue
		}
		out = append(out, product)
	}
	sortProducts(out, c.Sort)
	return out
}

func matchesCategory(p catalog.Product, category catalog.Category) bool {
	if category == "" || category == catalog.CategoryAll {
		return true
	}
	return p.Category == category
}

func matchesSearch(folder cases.Caser, p catalog.Product, needle string) bool {
	return strings.Contains(folder.String(p.Name), needle) ||
		strings.Contains(folder.String(p.Description), needle)
}

func matchesPrice(p catalog.Product, lo decimal.Decimal, hi decimal.NullDecimal) bool {
	if p.Price.LessThan(lo) {
		return false
	}
	if hi.Valid && p.Price.GreaterThan(hi.Decimal) {
		return false
	}
	return true
}

func sortProducts(products []catalog.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortName:
		collator := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return collator.CompareString(a.Name, b.Name)
		})
	case SortRating:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
	}
}

// ParseCriteria reads criteria from shop query parameters. Malformed or
// negative prices and unknown sort keys fall back to their defaults.
func ParseCriteria(values url.Values) Criteria {
	c := Criteria{
		Category: catalog.Category(strings.TrimSpace(values.Get(ParamCategory))),
		Search:   values.Get(ParamSearch),
		Sort:     parseSort(values.Get(ParamSort)),
		View:     parseView(values.Get(ParamView)),
	}
	if c.Category == "" {
		c.Category = catalog.CategoryAll
	}
	if lo, ok := parsePrice(values.Get(ParamMin)); ok {
		c.PriceMin = lo
	}
	if hi, ok := parsePrice(values.Get(ParamMax)); ok {
		c.PriceMax = decimal.NewNullDecimal(hi)
	}
	return c
}

func parseSort(raw string) SortKey {
	key := SortKey(strings.TrimSpace(raw))
	if slices.Contains(SortOptions(), key) {
		return key
	}
	return SortNone
}

func parseView(raw string) ViewMode {
	if ViewMode(strings.TrimSpace(raw)) == ViewList {
		return ViewList
	}
	return ViewGrid
}

func parsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return decimal.Decimal{}, false
	}
	return value, true
}

// Values encodes c as query parameters, omitting defaults.
func (c Criteria) Values() url.Values {
	values := url.Values{}
	if c.Category != "" && c.Category != catalog.CategoryAll {
		values.Set(ParamCategory, string(c.Category))
	}
	if c.Search != "" {
		values.Set(ParamSearch, c.Search)
	}
	if c.PriceMin.IsPositive() {
		values.Set(ParamMin, c.PriceMin.String())
	}
	if c.PriceMax.Valid {
		values.Set(ParamMax, c.PriceMax.Decimal.String())
	}
	if c.Sort != SortNone {
		values.Set(ParamSort, string(c.Sort))
	}
	if c.View == ViewList {
		values.Set(ParamView, string(ViewList))
	}
	return values
}

// WithCategory returns a copy of c selecting category.
func (c Criteria) WithCategory(category catalog.Category) Criteria {
	c.Category = category
	return c
}

// WithView returns a copy of c rendered in the given layout.
func (c Criteria) WithView(view ViewMode) Criteria {
	c.View = view
	return c
}
