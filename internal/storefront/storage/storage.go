// Package storage selects the persistence backend for accounts and the
// contact inbox.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/contact"
	"github.com/arvana/storefront/internal/storefront/storage/sqlite"
)

// Backend bundles the persistent collaborators of the storefront.
type Backend struct {
	Directory auth.Directory
	Inbox     contact.Inbox
	Kind      string

	close func() error
}

// Close releases backend resources.
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// Open returns a SQLite backend when path is set and an in-memory backend
// otherwise. Both start with the demo account and the seed inbox.
func Open(ctx context.Context, path string) (*Backend, error) {
	if strings.TrimSpace(path) == "" {
		directory, err := auth.NewMemoryDirectory()
		if err != nil {
			return nil, err
		}
		return &Backend{
			Directory: directory,
			Inbox:     contact.NewMemoryInbox(contact.SeedMessages()...),
			Kind:      "memory",
		}, nil
	}

	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite storage: %w", err)
	}
	if err := store.EnsureAccount(ctx, auth.Registration{
		Name:     auth.DemoName,
		Email:    auth.DemoEmail,
		Password: auth.DemoPassword,
	}); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("seed demo account: %w", err)
	}
	return &Backend{
		Directory: store,
		Inbox:     store,
		Kind:      "sqlite",
		close:     store.Close,
	}, nil
}
