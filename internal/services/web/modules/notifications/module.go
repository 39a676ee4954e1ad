package notifications

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

// Module provides visitor notification routes.
type Module struct {
	base modulehandler.Base
}

// New returns a notifications module.
func New(base modulehandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "notifications" }

// Mount wires notification route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefix: routepath.NotificationsPrefix, Handler: mux}, nil
}
