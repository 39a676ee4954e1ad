package notify

import (
	"testing"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func titles(list []Notification) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.Title)
	}
	return out
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewStore(clock.NewFake(epoch), 0)
	first := s.Add(KindSuccess, "Added to Cart", "Polo Shirt has been added to your cart.")
	s.Add(KindError, "Message Failed to Send", "Please try again.")
	s.Add(Kind("loud"), "Heads up", "")

	list := s.List()
	assert.Equal(t, []string{"Added to Cart", "Message Failed to Send", "Heads up"}, titles(list))
	assert.Equal(t, KindInfo, list[2].Kind)
	assert.Equal(t, epoch, first.CreatedAt)
	assert.Len(t, first.ID, 26)
}

func TestNotificationsExpireAfterTTL(t *testing.T) {
	t.Parallel()

	c := clock.NewFake(epoch)
	s := NewStore(c, DefaultTTL)
	s.Add(KindInfo, "first", "")
	c.Advance(2 * time.Second)
	s.Add(KindInfo, "second", "")

	c.Advance(DefaultTTL - 2*time.Second - time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, titles(s.List()))

	c.Advance(2 * time.Millisecond)
	assert.Equal(t, []string{"second"}, titles(s.List()))

	c.Advance(2 * time.Second)
	assert.Empty(t, s.List())
	assert.Zero(t, c.Pending())
}

func TestDismissCancelsExpiry(t *testing.T) {
	t.Parallel()

	c := clock.NewFake(epoch)
	s := NewStore(c, time.Second)
	n := s.Add(KindWarning, "gone", "")
	keep := s.Add(KindInfo, "kept", "")

	require.True(t, s.Dismiss(n.ID))
	assert.Equal(t, []string{"kept"}, titles(s.List()))
	assert.Equal(t, 1, c.Pending())

	assert.False(t, s.Dismiss(n.ID))
	c.Advance(time.Second)
	assert.Empty(t, s.List())
	assert.False(t, s.Dismiss(keep.ID))
}

func TestCloseStopsTimers(t *testing.T) {
	t.Parallel()

	c := clock.NewFake(epoch)
	s := NewStore(c, time.Second)
	s.Add(KindInfo, "one", "")
	s.Add(KindInfo, "two", "")
	s.Close()

	assert.Zero(t, c.Pending())
	assert.Zero(t, s.Len())
	s.Add(KindInfo, "after close", "")
	assert.Zero(t, s.Len())
}

func TestRealClockExpiry(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 20*time.Millisecond)
	s.Add(KindSuccess, "soon gone", "")
	require.Equal(t, 1, s.Len())
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
}
