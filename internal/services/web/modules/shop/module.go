package shop

import (
	"errors"
	"net/http"

	"github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/catalog"
)

// Catalog is the read-only product source the shop browses.
type Catalog interface {
	Products() []catalog.Product
	Lookup(productID string) (catalog.Product, bool)
	Categories() []catalog.CategoryCount
}

// Module provides the product listing and detail routes.
type Module struct {
	catalog Catalog
	base    modulehandler.Base
}

// New returns a shop module browsing c.
func New(c Catalog, base modulehandler.Base) Module {
	return Module{catalog: c, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "shop" }

// Healthy reports whether the module has a catalog to serve.
func (m Module) Healthy() bool { return m.catalog != nil }

// Mount wires shop route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.catalog == nil {
		return module.Mount{}, errors.New("shop catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.catalog, m.base))
	return module.Mount{Prefix: routepath.ProductsPrefix, Handler: mux}, nil
}
