package admin

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminRestPattern, h.WriteNotFound)
}
