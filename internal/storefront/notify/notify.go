// Package notify holds a visitor's transient notifications. Each
// notification expires after a fixed TTL unless dismissed first.
package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/arvana/storefront/internal/platform/id"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Kind is a notification severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo, KindWarning:
		return true
	default:
		return false
	}
}

// Notification is one queued message.
type Notification struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	CreatedAt time.Time
}

type pending struct {
	notification Notification
	timer        clock.Timer
}

// Store is an insertion-ordered notification queue.
type Store struct {
	clock clock.Clock
	ttl   time.Duration

	mu     sync.Mutex
	queue  []pending
	closed bool
}

// NewStore returns an empty queue. A nil clock uses wall time and a
// non-positive ttl uses DefaultTTL.
func NewStore(c clock.Clock, ttl time.Duration) *Store {
	if c == nil {
		c = clock.Real{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{clock: c, ttl: ttl}
}

// Add queues a notification and schedules its removal. Unknown kinds are
// recorded as info.
func (s *Store) Add(kind Kind, title, message string) Notification {
	if !kind.Valid() {
		kind = KindInfo
	}
	n := Notification{
		ID:        id.MustNewID(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return n
	}
	notificationID := n.ID
	timer := s.clock.AfterFunc(s.ttl, func() { s.expire(notificationID) })
	s.queue = append(s.queue, pending{notification: n, timer: timer})
	return n
}

// Dismiss removes a notification and cancels its expiry. It reports
// whether the notification was still queued.
func (s *Store) Dismiss(notificationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(notificationID)
	if idx < 0 {
		return false
	}
	s.queue[idx].timer.Stop()
	s.queue = slices.Delete(s.queue, idx, idx+1)
	return true
}

// List returns queued notifications in insertion order.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, 0, len(s.queue))
	for _, p := range s.queue {
		out = append(out, p.notification)
	}
	return out
}

// Len returns the queue length.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close stops every pending expiry and empties the queue. Later Adds are
// returned but not queued.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.queue {
		p.timer.Stop()
	}
	s.queue = nil
	s.closed = true
}

func (s *Store) expire(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(notificationID); idx >= 0 {
		s.queue = slices.Delete(s.queue, idx, idx+1)
	}
}

func (s *Store) indexLocked(notificationID string) int {
	return slices.IndexFunc(s.queue, func(p pending) bool { return p.notification.ID == notificationID })
}
