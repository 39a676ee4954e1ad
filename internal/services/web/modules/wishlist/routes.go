package wishlist

import (
	"net/http"

	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Wishlist, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.WishlistPrefix+"{$}", h.handlePage)
	for pattern, handler := range map[string]http.HandlerFunc{
		routepath.WishlistItems:             h.handleAdd,
		routepath.WishlistItemRemovePattern: h.handleRemove,
		routepath.WishlistItemMovePattern:   h.handleMove,
		routepath.WishlistItemTogglePattern: h.handleToggle,
	} {
		mux.HandleFunc(http.MethodGet+" "+pattern, httpx.MethodNotAllowed(http.MethodPost))
		mux.HandleFunc(http.MethodPost+" "+pattern, handler)
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.WishlistRestPattern, h.WriteNotFound)
	mux.HandleFunc(http.MethodPost+" "+routepath.WishlistRestPattern, h.WriteNotFound)
}
