package shop

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Products, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductRestPattern, h.WriteNotFound)
}
