package clock

import (
	"testing"
	"time"
)

func TestFakeAdvanceFiresDueTimersInOrder(t *testing.T) {
	t.Parallel()

	c := NewFake(time.Unix(0, 0))
	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	c.Advance(500 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired = %v, want none", fired)
	}
	c.Advance(2 * time.Second)
	if len(fired) != 2 || fired[0] != "early" || fired[1] != "late" {
		t.Fatalf("fired = %v, want [early late]", fired)
	}
	if c.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", c.Pending())
	}
}

func TestFakeStopCancelsTimer(t *testing.T) {
	t.Parallel()

	c := NewFake(time.Unix(0, 0))
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop() = false, want true")
	}
	if timer.Stop() {
		t.Fatal("second Stop() = true, want false")
	}
	c.Advance(time.Minute)
	if fired {
		t.Fatal("stopped timer fired")
	}
}

func TestRealAfterFuncStops(t *testing.T) {
	t.Parallel()

	timer := Real{}.AfterFunc(time.Hour, func() {})
	if !timer.Stop() {
		t.Fatal("Stop() = false, want true")
	}
}
