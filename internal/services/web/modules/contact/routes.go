package contact

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactPrefix+"{$}", h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.ContactPrefix+"{$}", h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactRestPattern, h.WriteNotFound)
}
