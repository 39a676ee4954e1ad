package public

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.RootOnly, h.handleHome)
	mux.HandleFunc(http.MethodPost+" "+routepath.RootOnly, h.handleFormCapture)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleRegisterPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleRegister)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{rest...}", h.WriteNotFound)
}
