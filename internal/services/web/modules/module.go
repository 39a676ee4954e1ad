// Package modules defines web module registry helpers.
package modules

import (
	"github.com/arvana/storefront/internal/platform/events"
	module "github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/modules/admin"
	"github.com/arvana/storefront/internal/services/web/modules/contact"
	"github.com/arvana/storefront/internal/storefront/catalog"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// ModuleResolvers carries request-scoped resolver functions. The server
// builds these from the session middleware and passes them to registry
// functions for module composition.
type ModuleResolvers struct {
	ResolveViewer   module.ResolveViewer
	ResolveSignedIn module.ResolveSignedIn
	ResolveLanguage module.ResolveLanguage
}

// Catalog is the product source shared by the browsing modules.
type Catalog interface {
	Products() []catalog.Product
	Lookup(productID string) (catalog.Product, bool)
	Categories() []catalog.CategoryCount
}

// ContactService accepts submissions and lists the inbox.
type ContactService interface {
	contact.Submitter
	admin.Inbox
}

// Dependencies carries the shared services required to compose the web
// module registry. Each module receives only the narrow interface it
// declares.
type Dependencies struct {
	Catalog   Catalog
	Publisher events.Publisher
	Contact   ContactService
	Stats     admin.StatsSource

	// DemoCredentials shows the demo account on the sign-in form.
	DemoCredentials bool
	// Healthy backs the /up health check.
	Healthy func() bool
}
