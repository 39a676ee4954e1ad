package cart

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Cart, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartPrefix+"{$}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartItems, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.CartItems, h.handleAdd)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartItemQuantityPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.CartItemQuantityPattern, h.handleQuantity)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartItemRemovePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.CartItemRemovePattern, h.handleRemove)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartClear, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.CartClear, h.handleClear)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartRestPattern, h.WriteNotFound)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartRestPattern, h.WriteNotFound)
}
