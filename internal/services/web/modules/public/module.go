// Package public serves the storefront pages that need no sub-prefix: home,
// about, sign-in, registration, health and the contact form endpoint.
package public

import (
	"errors"
	"net/http"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/catalog"
)

// Catalog is the product source behind the home showcase.
type Catalog interface {
	Products() []catalog.Product
	Categories() []catalog.CategoryCount
}

// Dependencies carries what the public pages read and publish.
type Dependencies struct {
	Catalog   Catalog
	Publisher events.Publisher
	// DemoCredentials shows the demo account as a sign-in hint.
	DemoCredentials bool
	// Healthy backs the /up health check. Nil reports healthy.
	Healthy func() bool
}

// Module provides root-mounted public routes.
type Module struct {
	deps Dependencies
	base modulehandler.Base
}

// New returns a public module.
func New(deps Dependencies, base modulehandler.Base) Module {
	if deps.Publisher == nil {
		deps.Publisher = events.Nop{}
	}
	return Module{deps: deps, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers at the site root.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Catalog == nil {
		return module.Mount{}, errors.New("public catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps, m.base))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
