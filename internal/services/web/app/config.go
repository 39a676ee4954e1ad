package app

import (
	"net/http"

	module "github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	AuthRequired        module.ResolveSignedIn
	Denied              http.Handler
	RequestSchemePolicy requestmeta.SchemePolicy
}
