package modules

import (
	"github.com/arvana/storefront/internal/services/web/modules/admin"
	"github.com/arvana/storefront/internal/services/web/modules/cart"
	"github.com/arvana/storefront/internal/services/web/modules/contact"
	"github.com/arvana/storefront/internal/services/web/modules/notifications"
	"github.com/arvana/storefront/internal/services/web/modules/public"
	"github.com/arvana/storefront/internal/services/web/modules/shop"
	"github.com/arvana/storefront/internal/services/web/modules/wishlist"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
)

// DefaultPublicModules returns the storefront modules open to every visitor.
func DefaultPublicModules(deps Dependencies, res ModuleResolvers) []Module {
	base := modulehandler.NewBase(res.ResolveLanguage, res.ResolveViewer)
	return []Module{
		public.New(public.Dependencies{
			Catalog:         deps.Catalog,
			Publisher:       deps.Publisher,
			DemoCredentials: deps.DemoCredentials,
			Healthy:         deps.Healthy,
		}, base),
		shop.New(deps.Catalog, base),
		cart.New(deps.Catalog, deps.Publisher, base),
		wishlist.New(deps.Catalog, deps.Publisher, base),
		contact.New(deps.Contact, deps.Publisher, base),
		notifications.New(base),
	}
}

// DefaultProtectedModules returns the modules reserved for signed-in visitors.
func DefaultProtectedModules(deps Dependencies, res ModuleResolvers) []Module {
	base := modulehandler.NewBase(res.ResolveLanguage, res.ResolveViewer)
	return []Module{
		admin.New(deps.Catalog, deps.Stats, deps.Contact, base),
	}
}
