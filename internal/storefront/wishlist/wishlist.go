// Package wishlist implements the per-visitor wishlist. Mutations complete
// after a simulated round trip and are applied atomically.
package wishlist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/arvana/storefront/internal/storefront/cart"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/latency"
)

// ErrNotFound is returned when moving a product that is not wishlisted.
var ErrNotFound = errors.New("wishlist: product not in wishlist")

// Entry is one wishlisted product.
type Entry struct {
	Product catalog.Product
	AddedAt time.Time
}

// Cart is the subset of the cart store used by MoveToCart.
type Cart interface {
	Add(product catalog.Product, size, color string) (cart.Line, error)
}

// Store holds wishlist entries for one visitor.
type Store struct {
	latency latency.Latency
	clock   clock.Clock

	mu       sync.Mutex
	entries  []Entry
	inFlight int
}

// NewStore returns an empty wishlist. Nil dependencies default to no
// latency and the wall clock.
func NewStore(l latency.Latency, c clock.Clock) *Store {
	if c == nil {
		c = clock.Real{}
	}
	return &Store{latency: latency.OrNone(l), clock: c}
}

// Add wishlists product. Adding a product twice keeps one entry.
func (s *Store) Add(ctx context.Context, product catalog.Product) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(product)
	return nil
}

// Remove drops productID from the wishlist. Removing an absent product is
// not an error.
func (s *Store) Remove(ctx context.Context, productID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	return nil
}

// Toggle adds product when absent and removes it when present. It reports
// whether the product is wishlisted afterwards.
func (s *Store) Toggle(ctx context.Context, product catalog.Product) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(product.ID) >= 0 {
		s.removeLocked(product.ID)
		return false, nil
	}
	s.addLocked(product)
	return true, nil
}

// MoveToCart adds one unit of the wishlisted product to c using its first
// size and color and removes it from the wishlist. Both changes happen after
// the round trip under the wishlist lock, so a failed round trip leaves the
// cart untouched and concurrent moves of one product add it to c once.
func (s *Store) MoveToCart(ctx context.Context, productID string, c Cart) (cart.Line, error) {
	if c == nil {
		return cart.Line{}, errors.New("wishlist: cart is required")
	}
	if !s.Contains(productID) {
		return cart.Line{}, fmt.Errorf("%w: %s", ErrNotFound, productID)
	}
	if err := s.wait(ctx); err != nil {
		return cart.Line{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(productID)
	if idx < 0 {
		return cart.Line{}, fmt.Errorf("%w: %s", ErrNotFound, productID)
	}
	product := s.entries[idx].Product
	if len(product.Sizes) == 0 || len(product.Colors) == 0 {
		return cart.Line{}, fmt.Errorf("%w: %s has no default options", cart.ErrInvalidOption, productID)
	}
	line, err := c.Add(product, product.Sizes[0], product.Colors[0])
	if err != nil {
		return cart.Line{}, err
	}
	s.removeLocked(productID)
	return line, nil
}

// Contains reports whether productID is wishlisted.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(productID) >= 0
}

// Count returns the number of entries.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Loading reports whether any mutation is waiting on its round trip.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Snapshot returns the entries in the order they were added.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

func (s *Store) wait(ctx context.Context) error {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()
	if err := s.latency.Wait(ctx); err != nil {
		return fmt.Errorf("wishlist: %w", err)
	}
	return nil
}

func (s *Store) addLocked(product catalog.Product) {
	if s.indexLocked(product.ID) >= 0 {
		return
	}
	s.entries = append(s.entries, Entry{Product: product, AddedAt: s.clock.Now()})
}

func (s *Store) removeLocked(productID string) {
	if idx := s.indexLocked(productID); idx >= 0 {
		s.entries = slices.Delete(s.entries, idx, idx+1)
	}
}

func (s *Store) indexLocked(productID string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.Product.ID == productID })
}
