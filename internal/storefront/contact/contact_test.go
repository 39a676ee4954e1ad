package contact

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeliverer struct {
	err       error
	delivered []Submission
}

func (d *stubDeliverer) Deliver(_ context.Context, submission Submission) error {
	if d.err != nil {
		return d.err
	}
	d.delivered = append(d.delivered, submission)
	return nil
}

type failingInbox struct{ MemoryInbox }

func (*failingInbox) Record(context.Context, Message) error { return errors.New("disk full") }

func validSubmission() Submission {
	return Submission{Name: " Jane ", Email: "jane@example.com", Subject: "Sizing", Message: "Does the cardigan run large?"}
}

func TestSubmissionValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validSubmission().Validate())

	missing := Submission{Name: "Jane", Message: " "}
	err := missing.Validate()
	require.ErrorIs(t, err, ErrInvalidSubmission)
	assert.Contains(t, err.Error(), "email, subject, message")

	bad := validSubmission()
	bad.Email = "jane at example"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSubmission)
}

func TestFormRoundTrip(t *testing.T) {
	t.Parallel()

	form := validSubmission().Form()
	assert.Equal(t, "contact", form.Get("form-name"))
	assert.Equal(t, "Jane", form.Get("name"))

	parsed, ok := ParseForm(form)
	require.True(t, ok)
	assert.Equal(t, validSubmission().Normalize(), parsed)

	_, ok = ParseForm(url.Values{"form-name": {"newsletter"}})
	assert.False(t, ok)
}

func TestSubmitRecordsOnlyDelivered(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	deliverer := &stubDeliverer{}
	inbox := NewMemoryInbox()
	svc, err := NewService(deliverer, inbox, clock.NewFake(now))
	require.NoError(t, err)

	msg, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "Jane", msg.Name)
	assert.Equal(t, StatusUnread, msg.Status)
	assert.Equal(t, now, msg.ReceivedAt)
	require.Len(t, deliverer.delivered, 1)

	deliverer.err = ErrDeliveryFailed
	_, err = svc.Submit(context.Background(), validSubmission())
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	_, err = svc.Submit(context.Background(), Submission{})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	messages, err := svc.Messages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
}

func TestSubmitSurvivesInboxFailure(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubDeliverer{}, &failingInbox{}, nil)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), validSubmission())
	assert.NoError(t, err)
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, NewMemoryInbox(), nil)
	assert.Error(t, err)
	_, err = NewService(&stubDeliverer{}, nil, nil)
	assert.Error(t, err)
}

func TestMessagesNewestFirstAndUnreadCount(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubDeliverer{}, NewMemoryInbox(SeedMessages()[1], SeedMessages()[0]), nil)
	require.NoError(t, err)

	messages, err := svc.Messages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "John Doe", messages[0].Name)
	assert.Equal(t, 1, UnreadCount(messages))
}
