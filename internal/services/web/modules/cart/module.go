package cart

import (
	"errors"
	"net/http"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/catalog"
)

// ProductLookup resolves the products added to a cart.
type ProductLookup interface {
	Lookup(productID string) (catalog.Product, bool)
}

// Module provides the cart page and cart mutation routes.
type Module struct {
	products  ProductLookup
	publisher events.Publisher
	base      modulehandler.Base
}

// New returns a cart module. A nil publisher discards cart events.
func New(products ProductLookup, publisher events.Publisher, base modulehandler.Base) Module {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return Module{products: products, publisher: publisher, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "cart" }

// Mount wires cart route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.products == nil {
		return module.Mount{}, errors.New("cart product lookup is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.products, m.publisher, m.base))
	return module.Mount{Prefix: routepath.CartPrefix, Handler: mux}, nil
}
