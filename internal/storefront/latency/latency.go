// Package latency models the round trip of storefront operations that are
// not applied instantly.
package latency

import (
	"context"
	"time"
)

// Latency blocks until a simulated round trip completes. A non-nil error
// means the operation must not be applied.
type Latency interface {
	Wait(ctx context.Context) error
}

// None completes immediately unless ctx is already done.
type None struct{}

// Wait returns ctx.Err().
func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Delay waits a fixed duration.
type Delay time.Duration

// Wait blocks for d or until ctx is done, whichever comes first.
func (d Delay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Func adapts a function to Latency.
type Func func(ctx context.Context) error

// Wait calls f.
func (f Func) Wait(ctx context.Context) error {
	return f(ctx)
}

// OrNone returns l, or None when l is nil.
func OrNone(l Latency) Latency {
	if l == nil {
		return None{}
	}
	return l
}
