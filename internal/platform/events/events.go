// Package events carries storefront domain events over an in-process
// watermill pub/sub.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic is the single topic storefront activity is published on.
const Topic = "storefront.activity"

// Type names one kind of storefront activity.
type Type string

const (
	TypeCartLineAdded       Type = "cart.line_added"
	TypeCartCleared         Type = "cart.cleared"
	TypeWishlistAdded       Type = "wishlist.added"
	TypeWishlistMovedToCart Type = "wishlist.moved_to_cart"
	TypeSignedIn            Type = "auth.signed_in"
	TypeRegistered          Type = "auth.registered"
	TypeSignedOut           Type = "auth.signed_out"
	TypeContactSubmitted    Type = "contact.submitted"
)

// Event is one published storefront activity record.
type Event struct {
	Type       Type              `json:"type"`
	VisitorID  string            `json:"visitor_id,omitempty"`
	Subject    string            `json:"subject,omitempty"`
	Quantity   int               `json:"quantity,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Publisher publishes storefront events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Handler consumes one decoded event.
type Handler func(ctx context.Context, event Event) error

// Nop discards every event.
type Nop struct{}

// Publish discards event.
func (Nop) Publish(context.Context, Event) error { return nil }

// Bus is an in-process publisher/subscriber backed by a watermill go channel.
type Bus struct {
	pubsub *gochannel.GoChannel
	now    func() time.Time
}

// NewBus builds a bus. Events published before any subscriber exists are dropped.
func NewBus() *Bus {
	logger := watermill.NewStdLogger(false, false)
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 128}, logger),
		now:    time.Now,
	}
}

// Publish encodes event and publishes it on Topic.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	if b == nil || b.pubsub == nil {
		return errors.New("event bus is not configured")
	}
	if strings.TrimSpace(string(event.Type)) == "" {
		return errors.New("event type is required")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = b.now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", string(event.Type))
	if ctx != nil {
		msg.SetContext(ctx)
	}
	if err := b.pubsub.Publish(Topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Subscribe registers interest in Topic and returns a consume loop that runs
// handler for every message until ctx ends. Subscribing eagerly lets callers
// guarantee no event published afterwards is missed.
func (b *Bus) Subscribe(ctx context.Context, handler Handler) (func() error, error) {
	if b == nil || b.pubsub == nil {
		return nil, errors.New("event bus is not configured")
	}
	if handler == nil {
		return nil, errors.New("event handler is required")
	}
	messages, err := b.pubsub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", Topic, err)
	}
	return func() error {
		for msg := range messages {
			var event Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.Printf("event decode failed message_id=%s err=%v", msg.UUID, err)
				msg.Ack()
				continue
			}
			if err := handler(msg.Context(), event); err != nil {
				log.Printf("event handler failed type=%s message_id=%s err=%v", event.Type, msg.UUID, err)
			}
			msg.Ack()
		}
		return nil
	}, nil
}

// Close stops the underlying pub/sub and ends every consume loop.
func (b *Bus) Close() error {
	if b == nil || b.pubsub == nil {
		return nil
	}
	return b.pubsub.Close()
}
