package notifications

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Notifications, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.NotificationsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.NotificationDismissPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.NotificationDismissPattern, h.handleDismiss)
	mux.HandleFunc(http.MethodGet+" "+routepath.NotificationsRestPattern, h.WriteNotFound)
	mux.HandleFunc(http.MethodPost+" "+routepath.NotificationsRestPattern, h.WriteNotFound)
}
