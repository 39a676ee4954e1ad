// Package session keeps the server-side state of every storefront visitor.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/arvana/storefront/internal/platform/id"
	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/cart"
	"github.com/arvana/storefront/internal/storefront/latency"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/wishlist"
)

// Visitor bundles the stores of one browser session.
type Visitor struct {
	ID            string
	Cart          *cart.Store
	Wishlist      *wishlist.Store
	Auth          *auth.Store
	Notifications *notify.Store

	mu       sync.Mutex
	lastSeen time.Time
}

func (v *Visitor) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *Visitor) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

// Config configures a Registry.
type Config struct {
	// TTL is how long an idle visitor is kept.
	TTL time.Duration
	// NotificationTTL is passed to each visitor's notification store.
	NotificationTTL time.Duration
	// Latency delays wishlist and auth operations.
	Latency latency.Latency
	// Directory verifies and stores credentials.
	Directory auth.Directory
	// Clock defaults to wall time.
	Clock clock.Clock
}

// Registry owns every live Visitor.
type Registry struct {
	cfg Config

	mu       sync.Mutex
	visitors map[string]*Visitor
}

// NewRegistry validates cfg and returns an empty registry.
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.TTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	if cfg.Directory == nil {
		return nil, errors.New("auth directory is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	cfg.Latency = latency.OrNone(cfg.Latency)
	return &Registry{cfg: cfg, visitors: make(map[string]*Visitor)}, nil
}

// Create starts a new visitor.
func (r *Registry) Create() (*Visitor, error) {
	visitorID, err := id.NewID()
	if err != nil {
		return nil, err
	}
	v := &Visitor{
		ID:            visitorID,
		Cart:          cart.NewStore(),
		Wishlist:      wishlist.NewStore(r.cfg.Latency, r.cfg.Clock),
		Auth:          auth.NewStore(r.cfg.Directory, r.cfg.Latency),
		Notifications: notify.NewStore(r.cfg.Clock, r.cfg.NotificationTTL),
		lastSeen:      r.cfg.Clock.Now(),
	}
	r.mu.Lock()
	r.visitors[v.ID] = v
	r.mu.Unlock()
	return v, nil
}

// Get returns a live visitor and marks it active.
func (r *Registry) Get(visitorID string) (*Visitor, bool) {
	r.mu.Lock()
	v, ok := r.visitors[visitorID]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	now := r.cfg.Clock.Now()
	if now.Sub(v.idleSince()) > r.cfg.TTL {
		r.remove(visitorID)
		return nil, false
	}
	v.touch(now)
	return v, true
}

// Resolve returns the visitor named by visitorID, creating a fresh one when
// it is unknown or expired. created reports which happened.
func (r *Registry) Resolve(visitorID string) (v *Visitor, created bool, err error) {
	if visitorID != "" {
		if existing, ok := r.Get(visitorID); ok {
			return existing, false, nil
		}
	}
	v, err = r.Create()
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Len returns the number of live visitors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep drops visitors idle longer than the TTL and returns how many were
// removed.
func (r *Registry) Sweep() int {
	now := r.cfg.Clock.Now()
	r.mu.Lock()
	var expired []*Visitor
	for visitorID, v := range r.visitors {
		if now.Sub(v.idleSince()) > r.cfg.TTL {
			expired = append(expired, v)
			delete(r.visitors, visitorID)
		}
	}
	r.mu.Unlock()
	for _, v := range expired {
		v.Notifications.Close()
	}
	return len(expired)
}

// Run sweeps every interval until ctx ends.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("sweep interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				log.Printf("session sweep removed=%d live=%d", removed, r.Len())
			}
		}
	}
}

// Close drops every visitor and stops their timers.
func (r *Registry) Close() {
	r.mu.Lock()
	visitors := r.visitors
	r.visitors = make(map[string]*Visitor)
	r.mu.Unlock()
	for _, v := range visitors {
		v.Notifications.Close()
	}
}

func (r *Registry) remove(visitorID string) {
	r.mu.Lock()
	v, ok := r.visitors[visitorID]
	delete(r.visitors, visitorID)
	r.mu.Unlock()
	if ok {
		v.Notifications.Close()
	}
}
