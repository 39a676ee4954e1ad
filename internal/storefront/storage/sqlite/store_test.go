package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/contact"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestAccountRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	created, err := store.Create(ctx, auth.Registration{Name: "Sarah Smith", Email: "Sarah@Example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if created.Email != "sarah@example.com" {
		t.Fatalf("Email = %q, want %q", created.Email, "sarah@example.com")
	}

	got, err := store.Authenticate(ctx, "sarah@example.com", "password123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got != created {
		t.Fatalf("Authenticate() = %+v, want %+v", got, created)
	}

	if _, err := store.Authenticate(ctx, "sarah@example.com", "nope"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want %v", err, auth.ErrInvalidCredentials)
	}
	if _, err := store.Authenticate(ctx, "missing@example.com", "password123"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want %v", err, auth.ErrInvalidCredentials)
	}
	if _, err := store.Create(ctx, auth.Registration{Name: "Other", Email: "sarah@example.com", Password: "password123"}); !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("duplicate create error = %v, want %v", err, auth.ErrEmailTaken)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if err := store.Delete(ctx, created.ID); err == nil {
		t.Fatal("expected not found on second delete")
	}
	if _, err := store.Authenticate(ctx, "sarah@example.com", "password123"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("deleted account error = %v, want %v", err, auth.ErrInvalidCredentials)
	}
}

func TestEnsureAccountIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	reg := auth.Registration{Name: auth.DemoName, Email: auth.DemoEmail, Password: auth.DemoPassword}
	for range 2 {
		if err := store.EnsureAccount(context.Background(), reg); err != nil {
			t.Fatalf("ensure account: %v", err)
		}
	}
	if _, err := store.Authenticate(context.Background(), auth.DemoEmail, auth.DemoPassword); err != nil {
		t.Fatalf("authenticate demo: %v", err)
	}
}

func TestStoreBacksAuthStore(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	var directory auth.Directory = store
	s := auth.NewStore(directory, nil)
	if _, err := s.Register(context.Background(), auth.Registration{Name: "John Doe", Email: "john@example.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if s.State() != auth.StateSignedIn {
		t.Fatalf("State() = %v, want %v", s.State(), auth.StateSignedIn)
	}
}

func TestContactInboxSeededAndOrdered(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	seeded, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list seeded messages: %v", err)
	}
	if len(seeded) != 2 {
		t.Fatalf("seeded messages = %d, want 2", len(seeded))
	}
	if seeded[0].Name != "John Doe" || seeded[0].Status != contact.StatusUnread {
		t.Fatalf("first seeded message = %+v", seeded[0])
	}

	received := time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC)
	if err := store.Record(ctx, contact.Message{
		ID:         "msg-1",
		Name:       "Jane",
		Email:      "jane@example.com",
		Subject:    "Returns",
		Message:    "How do returns work?",
		ReceivedAt: received,
	}); err != nil {
		t.Fatalf("record message: %v", err)
	}

	messages, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(messages))
	}
	newest := messages[0]
	if newest.ID != "msg-1" || !newest.ReceivedAt.Equal(received) || newest.Status != contact.StatusUnread {
		t.Fatalf("newest message = %+v", newest)
	}
	if got := contact.UnreadCount(messages); got != 2 {
		t.Fatalf("UnreadCount() = %d, want 2", got)
	}
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storefront.db")
	first, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := first.Create(context.Background(), auth.Registration{Name: "Kept", Email: "kept@example.com", Password: "password123"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })
	if _, err := second.Authenticate(context.Background(), "kept@example.com", "password123"); err != nil {
		t.Fatalf("authenticate after reopen: %v", err)
	}
	messages, err := second.List(context.Background())
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("messages after reopen = %d, want 2", len(messages))
	}
}
