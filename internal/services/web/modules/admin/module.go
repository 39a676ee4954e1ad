// Package admin serves the read-only management dashboard for signed-in
// visitors.
package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/activity"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/contact"
)

// Catalog is the product source listed on the dashboard.
type Catalog interface {
	Products() []catalog.Product
	Categories() []catalog.CategoryCount
}

// StatsSource combines baseline figures with live activity.
type StatsSource interface {
	Stats(totalProducts, unreadMessages int) activity.Stats
}

// Inbox lists received contact messages.
type Inbox interface {
	Messages(ctx context.Context) ([]contact.Message, error)
}

// Module provides the admin dashboard routes.
type Module struct {
	catalog Catalog
	stats   StatsSource
	inbox   Inbox
	base    modulehandler.Base
}

// New returns an admin module.
func New(c Catalog, stats StatsSource, inbox Inbox, base modulehandler.Base) Module {
	return Module{catalog: c, stats: stats, inbox: inbox, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "admin" }

// Healthy reports whether every dashboard source is wired.
func (m Module) Healthy() bool {
	return m.catalog != nil && m.stats != nil && m.inbox != nil
}

// Mount wires admin route handlers.
func (m Module) Mount() (module.Mount, error) {
	if !m.Healthy() {
		return module.Mount{}, errors.New("admin catalog, stats and inbox are required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.catalog, m.stats, m.inbox, m.base))
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
