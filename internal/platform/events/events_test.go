package events

import (
	"context"
	"testing"
	"time"
)

func TestBusDeliversPublishedEvents(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	received := make(chan Event, 1)
	consume, err := bus.Subscribe(context.Background(), func(_ context.Context, event Event) error {
		received <- event
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	go func() { _ = consume() }()

	if err := bus.Publish(context.Background(), Event{Type: TypeCartLineAdded, Subject: "1", Quantity: 1}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case event := <-received:
		if event.Type != TypeCartLineAdded {
			t.Fatalf("event.Type = %q, want %q", event.Type, TypeCartLineAdded)
		}
		if event.Subject != "1" {
			t.Fatalf("event.Subject = %q, want %q", event.Subject, "1")
		}
		if event.OccurredAt.IsZero() {
			t.Fatal("expected OccurredAt to be stamped")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBusRejectsUntypedEvent(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	if err := bus.Publish(context.Background(), Event{}); err == nil {
		t.Fatal("expected missing type error")
	}
}

func TestBusSubscribeRequiresHandler(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	if _, err := bus.Subscribe(context.Background(), nil); err == nil {
		t.Fatal("expected missing handler error")
	}
}

func TestNilBusFailsClosed(t *testing.T) {
	t.Parallel()

	var bus *Bus
	if err := bus.Publish(context.Background(), Event{Type: TypeSignedIn}); err == nil {
		t.Fatal("expected unconfigured bus error")
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestNopPublisherDiscards(t *testing.T) {
	t.Parallel()

	var publisher Publisher = Nop{}
	if err := publisher.Publish(context.Background(), Event{Type: TypeSignedOut}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
}
