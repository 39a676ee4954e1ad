// Package catalog holds the immutable ARVANA product catalog.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products for browsing.
type Category string

const (
	// CategoryAll is the browse sentinel that matches every product.
	CategoryAll Category = "all"

	CategoryTops     Category = "tops"
	CategoryBottoms  Category = "bottoms"
	CategoryShirts   Category = "shirts"
	CategorySweaters Category = "sweaters"
	CategoryJackets  Category = "jackets"
)

var categoryOrder = []struct {
	id   Category
	name string
}{
	{CategoryTops, "Tops"},
	{CategoryBottoms, "Bottoms"},
	{CategoryShirts, "Shirts"},
	{CategorySweaters, "Sweaters"},
	{CategoryJackets, "Jackets"},
}

// Valid reports whether c names a concrete product category.
func (c Category) Valid() bool {
	for _, entry := range categoryOrder {
		if entry.id == c {
			return true
		}
	}
	return false
}

// Product is one catalog item. Products are immutable after catalog
// construction.
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	OriginalPrice decimal.NullDecimal
	Category      Category
	Description   string
	Sizes         []string
	Colors        []string
	Image         string
	Images        []string
	Rating        float64
	Reviews       int
	IsNew         bool
	IsSale        bool
}

// Discounted reports whether the product sells below its original price.
func (p Product) Discounted() bool {
	return p.OriginalPrice.Valid && p.Price.LessThan(p.OriginalPrice.Decimal)
}

// Savings returns the difference between original and current price, or
// zero when the product is not discounted.
func (p Product) Savings() decimal.Decimal {
	if !p.Discounted() {
		return decimal.Zero
	}
	return p.OriginalPrice.Decimal.Sub(p.Price)
}

// HasSize reports whether size is one of the product's offered sizes.
func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// HasColor reports whether color is one of the product's offered colors.
func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

// Gallery returns the product images, falling back to the primary image.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return slices.Clone(p.Images)
	}
	if p.Image == "" {
		return nil
	}
	return []string{p.Image}
}

// CategoryCount summarizes one browse category.
type CategoryCount struct {
	ID    Category
	Name  string
	Count int
}

// Catalog is a read-only, ordered product collection.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New validates products and returns a catalog preserving their order.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, product := range products {
		if err := validate(product); err != nil {
			return nil, err
		}
		if _, ok := c.byID[product.ID]; ok {
			return nil, fmt.Errorf("product %q: duplicate id", product.ID)
		}
		c.byID[product.ID] = len(c.products)
		c.products = append(c.products, product)
	}
	return c, nil
}

func validate(p Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("product id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %q: name is required", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %q: price must not be negative", p.ID)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %q: rating %.1f out of range", p.ID, p.Rating)
	}
	if p.Reviews < 0 {
		return fmt.Errorf("product %q: reviews must not be negative", p.ID)
	}
	if len(p.Sizes) == 0 || len(p.Colors) == 0 {
		return fmt.Errorf("product %q: sizes and colors are required", p.ID)
	}
	return nil
}

// Products returns the catalog in its fixed order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	return slices.Clone(c.products)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Lookup finds a product by id.
func (c *Catalog) Lookup(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Categories returns the browse categories with derived counts, led by the
// all-products sentinel.
func (c *Catalog) Categories() []CategoryCount {
	counts := make(map[Category]int, len(categoryOrder))
	for _, product := range c.Products() {
		counts[product.Category]++
	}
	out := make([]CategoryCount, 0, len(categoryOrder)+1)
	out = append(out, CategoryCount{ID: CategoryAll, Name: "All Products", Count: c.Len()})
	for _, entry := range categoryOrder {
		out = append(out, CategoryCount{ID: entry.id, Name: entry.name, Count: counts[entry.id]})
	}
	return out
}
