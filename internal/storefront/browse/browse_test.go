package browse

import (
	"net/url"
	"testing"

	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestSelectDefaultsKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	products := catalog.Seed()
	got := Select(products, Criteria{Category: catalog.CategoryAll})
	assert.Equal(t, ids(products), ids(got))

	assert.Equal(t, ids(products), ids(Select(products, Criteria{})))
}

func TestSelectCategory(t *testing.T) {
	t.Parallel()

	got := Select(catalog.Seed(), Criteria{Category: catalog.CategoryBottoms})
	assert.Equal(t, []string{"2", "6"}, ids(got))

	assert.Empty(t, Select(catalog.Seed(), Criteria{Category: "Bottoms"}))
}

func TestSelectSearchIsCaseInsensitiveOnNameOrDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		search string
		want   []string
	}{
		{search: "SHIRT", want: []string{"1", "4", "8"}},
		{search: "denim", want: []string{"2"}},
		{search: "layering", want: []string{"7"}},
		{search: "", want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{search: " ", want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{search: "  ", want: []string{}},
		{search: "polo ", want: []string{"8"}},
		{search: " polo", want: []string{"8"}},
		{search: " shirt ", want: []string{"4", "8"}},
		{search: "nothing-matches", want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.search, func(t *testing.T) {
			t.Parallel()
			got := Select(catalog.Seed(), Criteria{Search: tc.search})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestSelectPriceRangeIsInclusive(t *testing.T) {
	t.Parallel()

	got := Select(catalog.Seed(), Criteria{
		PriceMin: decimal.RequireFromString("49.99"),
		PriceMax: decimal.NewNullDecimal(decimal.RequireFromString("79.99")),
	})
	assert.Equal(t, []string{"2", "4", "6", "7"}, ids(got))

	got = Select(catalog.Seed(), Criteria{PriceMin: decimal.RequireFromString("100")})
	assert.Equal(t, []string{"5"}, ids(got))
}

func TestSelectSortOrders(t *testing.T) {
	t.Parallel()

	products := catalog.Seed()

	byPrice := Select(products, Criteria{Sort: SortPriceLow})
	for i := 1; i < len(byPrice); i++ {
		assert.False(t, byPrice[i].Price.LessThan(byPrice[i-1].Price), "price-low must be non-decreasing")
	}

	byPriceDesc := Select(products, Criteria{Sort: SortPriceHigh})
	assert.Equal(t, "5", byPriceDesc[0].ID)

	byRating := Select(products, Criteria{Sort: SortRating})
	for i := 1; i < len(byRating); i++ {
		assert.LessOrEqual(t, byRating[i].Rating, byRating[i-1].Rating)
	}

	byName := Select(products, Criteria{Sort: SortName})
	assert.Equal(t, []string{"4", "6", "7", "5", "8", "1", "2", "3"}, ids(byName))
}

func TestSelectSortIsStable(t *testing.T) {
	t.Parallel()

	base := catalog.Seed()[0]
	a, b, c := base, base, base
	a.ID, b.ID, c.ID = "a", "b", "c"
	c.Price = decimal.RequireFromString("1")

	got := Select([]catalog.Product{a, b, c}, Criteria{Sort: SortPriceLow})
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))

	got = Select([]catalog.Product{a, b}, Criteria{Sort: SortRating})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	products := catalog.Seed()
	before := ids(products)
	first := Select(products, Criteria{Sort: SortPriceHigh})
	second := Select(products, Criteria{Sort: SortPriceHigh})

	assert.Equal(t, before, ids(products))
	assert.Equal(t, ids(first), ids(second))
}

func TestParseCriteria(t *testing.T) {
	t.Parallel()

	c := ParseCriteria(url.Values{
		ParamCategory: {"tops"},
		ParamSearch:   {" polo"},
		ParamMin:      {"10"},
		ParamMax:      {"50.5"},
		ParamSort:     {"rating"},
	})
	assert.Equal(t, catalog.CategoryTops, c.Category)
	assert.Equal(t, " polo", c.Search)
	assert.True(t, c.PriceMin.Equal(decimal.NewFromInt(10)))
	require.True(t, c.PriceMax.Valid)
	assert.True(t, c.PriceMax.Decimal.Equal(decimal.RequireFromString("50.5")))
	assert.Equal(t, SortRating, c.Sort)
}

func TestParseCriteriaFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	c := ParseCriteria(url.Values{
		ParamMin:  {"-5"},
		ParamMax:  {"lots"},
		ParamSort: {"popularity"},
	})
	assert.Equal(t, catalog.CategoryAll, c.Category)
	assert.True(t, c.PriceMin.IsZero())
	assert.False(t, c.PriceMax.Valid)
	assert.Equal(t, SortNone, c.Sort)
}

func TestCriteriaValuesRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseCriteria(url.Values{}).Values())

	in := url.Values{
		ParamCategory: {"jackets"},
		ParamSearch:   {"leather"},
		ParamMin:      {"100"},
		ParamMax:      {"250"},
		ParamSort:     {"price-high"},
		ParamView:     {"list"},
	}
	assert.Equal(t, in, ParseCriteria(in).Values())

	assert.Equal(t, catalog.CategoryShirts, Criteria{}.WithCategory(catalog.CategoryShirts).Category)
}

func TestViewModeDefaultsToGridAndIgnoresSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want ViewMode
	}{
		{raw: "", want: ViewGrid},
		{raw: "list", want: ViewList},
		{raw: " list ", want: ViewList},
		{raw: "table", want: ViewGrid},
	}
	for _, tc := range tests {
		c := ParseCriteria(url.Values{ParamView: {tc.raw}})
		assert.Equal(t, tc.want, c.View, "view %q", tc.raw)
	}

	grid := Select(catalog.Seed(), Criteria{Sort: SortName})
	list := Select(catalog.Seed(), Criteria{Sort: SortName, View: ViewList})
	assert.Equal(t, ids(grid), ids(list))

	assert.Empty(t, Criteria{}.WithView(ViewGrid).Values())
	assert.Equal(t, "list", Criteria{}.WithView(ViewList).Values().Get(ParamView))
}
