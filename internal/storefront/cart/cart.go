// Package cart implements the per-visitor shopping cart.
package cart

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidOption is returned when a size or color is not offered by
	// the product.
	ErrInvalidOption = errors.New("cart: size or color not offered for product")
	// ErrInvalidQuantity is returned for negative quantities.
	ErrInvalidQuantity = errors.New("cart: quantity must not be negative")
	// ErrLineNotFound is returned for unknown line ids.
	ErrLineNotFound = errors.New("cart: line not found")
)

var lineIDPart = strings.NewReplacer("%", "%25", "-", "%2D")

// LineID returns the identity of a (product, size, color) tuple. Parts are
// joined with "-"; a "-" or "%" inside a part is percent-encoded so distinct
// tuples never share an id.
func LineID(productID, size, color string) string {
	return lineIDPart.Replace(productID) + "-" + lineIDPart.Replace(size) + "-" + lineIDPart.Replace(color)
}

// Line is one cart entry.
type Line struct {
	ID       string
	Product  catalog.Product
	Size     string
	Color    string
	Quantity int
}

// Subtotal returns price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is an immutable view of the cart. Totals are derived on demand.
type Snapshot struct {
	lines []Line
}

// Lines returns the cart lines in insertion order.
func (s Snapshot) Lines() []Line {
	return slices.Clone(s.lines)
}

// Total returns the exact sum of every line subtotal.
func (s Snapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Count returns the sum of line quantities.
func (s Snapshot) Count() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Empty reports whether the cart has no lines.
func (s Snapshot) Empty() bool {
	return len(s.lines) == 0
}

// Line finds a line by id.
func (s Snapshot) Line(id string) (Line, bool) {
	for _, line := range s.lines {
		if line.ID == id {
			return line, true
		}
	}
	return Line{}, false
}

// Store is a concurrency-safe cart.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of product in the given size and color into the cart,
// merging with an existing line for the same tuple.
func (s *Store) Add(product catalog.Product, size, color string) (Line, error) {
	if !product.HasSize(size) || !product.HasColor(color) {
		return Line{}, fmt.Errorf("%w: %s size=%q color=%q", ErrInvalidOption, product.ID, size, color)
	}
	id := LineID(product.ID, size, color)

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		s.lines[idx].Quantity++
		return s.lines[idx], nil
	}
	line := Line{ID: id, Product: product, Size: size, Color: color, Quantity: 1}
	s.lines = append(s.lines, line)
	return line, nil
}

// UpdateQuantity sets a line's quantity exactly. Zero removes the line.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	if quantity == 0 {
		s.lines = slices.Delete(s.lines, idx, idx+1)
		return nil
	}
	s.lines[idx].Quantity = quantity
	return nil
}

// Remove deletes a line.
func (s *Store) Remove(id string) error {
	return s.UpdateQuantity(id, 0)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Snapshot returns a copy of the current cart.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{lines: slices.Clone(s.lines)}
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.lines, func(line Line) bool { return line.ID == id })
}
