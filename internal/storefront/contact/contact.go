// Package contact relays contact-form submissions to the form endpoint and
// keeps the inbox shown on the admin dashboard.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/arvana/storefront/internal/platform/id"
)

// FormName identifies storefront contact submissions at the form endpoint.
const FormName = "contact"

var (
	// ErrInvalidSubmission is returned for incomplete forms.
	ErrInvalidSubmission = errors.New("contact: invalid submission")
	// ErrDeliveryFailed is returned when the form endpoint rejects or
	// cannot receive a submission.
	ErrDeliveryFailed = errors.New("contact: delivery failed")
)

// Status is the admin read state of a message.
type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

// Submission is one filled-in contact form.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Normalize trims every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate reports missing fields and malformed email addresses.
func (s Submission) Validate() error {
	s = s.Normalize()
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Subject == "" {
		missing = append(missing, "subject")
	}
	if s.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidSubmission, strings.Join(missing, ", "))
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return fmt.Errorf("%w: email is invalid", ErrInvalidSubmission)
	}
	return nil
}

// Form encodes the submission in the form endpoint's wire format.
func (s Submission) Form() url.Values {
	s = s.Normalize()
	return url.Values{
		"form-name": {FormName},
		"name":      {s.Name},
		"email":     {s.Email},
		"subject":   {s.Subject},
		"message":   {s.Message},
	}
}

// ParseForm decodes a submission from form values. It reports false when
// the values are not a storefront contact form.
func ParseForm(values url.Values) (Submission, bool) {
	if strings.TrimSpace(values.Get("form-name")) != FormName {
		return Submission{}, false
	}
	return Submission{
		Name:    values.Get("name"),
		Email:   values.Get("email"),
		Subject: values.Get("subject"),
		Message: values.Get("message"),
	}.Normalize(), true
}

// Message is a received contact message.
type Message struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt time.Time
	Status     Status
}

// Deliverer sends a submission to the form endpoint.
type Deliverer interface {
	Deliver(ctx context.Context, submission Submission) error
}

// Inbox stores received messages.
type Inbox interface {
	Record(ctx context.Context, message Message) error
	List(ctx context.Context) ([]Message, error)
}

// Service validates, delivers and records contact submissions.
type Service struct {
	deliverer Deliverer
	inbox     Inbox
	clock     clock.Clock
}

// NewService builds a contact service. A nil clock uses wall time.
func NewService(deliverer Deliverer, inbox Inbox, c clock.Clock) (*Service, error) {
	if deliverer == nil {
		return nil, errors.New("contact deliverer is required")
	}
	if inbox == nil {
		return nil, errors.New("contact inbox is required")
	}
	if c == nil {
		c = clock.Real{}
	}
	return &Service{deliverer: deliverer, inbox: inbox, clock: c}, nil
}

// Submit delivers submission and, once delivered, records it in the inbox.
// A failed delivery records nothing.
func (s *Service) Submit(ctx context.Context, submission Submission) (Message, error) {
	if err := submission.Validate(); err != nil {
		return Message{}, err
	}
	submission = submission.Normalize()
	if err := s.deliverer.Deliver(ctx, submission); err != nil {
		return Message{}, err
	}
	messageID, err := id.NewID()
	if err != nil {
		return Message{}, err
	}
	message := Message{
		ID:         messageID,
		Name:       submission.Name,
		Email:      submission.Email,
		Subject:    submission.Subject,
		Message:    submission.Message,
		ReceivedAt: s.clock.Now().UTC(),
		Status:     StatusUnread,
	}
	if err := s.inbox.Record(ctx, message); err != nil {
		log.Printf("contact inbox record failed id=%s err=%v", message.ID, err)
	}
	return message, nil
}

// Messages lists the inbox, newest first.
func (s *Service) Messages(ctx context.Context) ([]Message, error) {
	messages, err := s.inbox.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	SortNewestFirst(messages)
	return messages, nil
}

// UnreadCount counts unread messages.
func UnreadCount(messages []Message) int {
	count := 0
	for _, m := range messages {
		if m.Status == StatusUnread {
			count++
		}
	}
	return count
}

// SortNewestFirst orders messages by receipt time, newest first.
func SortNewestFirst(messages []Message) {
	slices.SortStableFunc(messages, func(a, b Message) int {
		return b.ReceivedAt.Compare(a.ReceivedAt)
	})
}

// SeedMessages returns the messages a fresh inbox starts with.
func SeedMessages() []Message {
	return []Message{
		{
			ID:         "seed-1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Subject:    "Product Inquiry",
			Message:    "I have a question about the sizing for the wool sweater...",
			ReceivedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:     StatusUnread,
		},
		{
			ID:         "seed-2",
			Name:       "Sarah Smith",
			Email:      "sarah@example.com",
			Subject:    "Order Support",
			Message:    "My order #1234 seems to be delayed. Can you help?",
			ReceivedAt: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			Status:     StatusRead,
		},
	}
}

// MemoryInbox is an in-process inbox.
type MemoryInbox struct {
	mu       sync.Mutex
	messages []Message
}

// NewMemoryInbox returns an inbox holding seed.
func NewMemoryInbox(seed ...Message) *MemoryInbox {
	return &MemoryInbox{messages: slices.Clone(seed)}
}

// Record appends message.
func (i *MemoryInbox) Record(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.messages = append(i.messages, message)
	return nil
}

// List returns a copy of every message.
func (i *MemoryInbox) List(ctx context.Context) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.messages), nil
}
