// Package activity aggregates storefront events into dashboard statistics.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/shopspring/decimal"
)

// Baseline holds the historical figures the dashboard starts from.
type Baseline struct {
	Orders    int
	Revenue   decimal.Decimal
	Customers int
}

// DefaultBaseline returns the launch figures.
func DefaultBaseline() Baseline {
	return Baseline{
		Orders:    1247,
		Revenue:   decimal.NewFromInt(89650),
		Customers: 3421,
	}
}

// Counters are live totals since process start.
type Counters struct {
	CartAdditions      int
	CartClears         int
	WishlistAdds       int
	WishlistMoves      int
	SignIns            int
	SignOuts           int
	Registrations      int
	ContactSubmissions int
	LastEventAt        time.Time
}

// Stats is the dashboard summary.
type Stats struct {
	TotalProducts   int
	TotalOrders     int
	TotalRevenue    decimal.Decimal
	TotalCustomers  int
	PendingMessages int
	Live            Counters
}

// Tracker counts events delivered through Handle.
type Tracker struct {
	baseline Baseline

	mu       sync.Mutex
	counters Counters
}

// NewTracker returns a tracker starting from baseline.
func NewTracker(baseline Baseline) *Tracker {
	return &Tracker{baseline: baseline}
}

// Handle applies one event. It satisfies events.Handler.
func (t *Tracker) Handle(_ context.Context, event events.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	quantity := event.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	switch event.Type {
	case events.TypeCartLineAdded:
		t.counters.CartAdditions += quantity
	case events.TypeCartCleared:
		t.counters.CartClears++
	case events.TypeWishlistAdded:
		t.counters.WishlistAdds++
	case events.TypeWishlistMovedToCart:
		t.counters.WishlistMoves++
	case events.TypeSignedIn:
		t.counters.SignIns++
	case events.TypeSignedOut:
		t.counters.SignOuts++
	case events.TypeRegistered:
		t.counters.Registrations++
	case events.TypeContactSubmitted:
		t.counters.ContactSubmissions++
	default:
		return nil
	}
	if event.OccurredAt.After(t.counters.LastEventAt) {
		t.counters.LastEventAt = event.OccurredAt
	}
	return nil
}

// Counters returns the live totals.
func (t *Tracker) Counters() Counters {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counters
}

// Stats combines the baseline, live counters and the given catalog size
// and unread message count.
func (t *Tracker) Stats(totalProducts, unreadMessages int) Stats {
	counters := t.Counters()
	return Stats{
		TotalProducts:   totalProducts,
		TotalOrders:     t.baseline.Orders,
		TotalRevenue:    t.baseline.Revenue,
		TotalCustomers:  t.baseline.Customers + counters.Registrations,
		PendingMessages: unreadMessages,
		Live:            counters,
	}
}

// Subscriber is the part of the event bus the tracker consumes.
type Subscriber interface {
	Subscribe(ctx context.Context, handler events.Handler) (func() error, error)
}

// Run subscribes the tracker and consumes events until ctx ends or the bus
// closes.
func (t *Tracker) Run(ctx context.Context, bus Subscriber) error {
	consume, err := bus.Subscribe(ctx, t.Handle)
	if err != nil {
		return err
	}
	return consume()
}
