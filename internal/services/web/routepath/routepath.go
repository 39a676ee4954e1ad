// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root     = "/"
	RootOnly = "/{$}"
	About    = "/about"
	Login    = "/login"
	Register = "/register"
	Logout   = "/logout"
	Health   = "/up"
	Static   = "/static/"

	Products           = "/products"
	ProductsPrefix     = "/products/"
	ProductPattern     = ProductsPrefix + "{productID}"
	ProductRestPattern = ProductsPrefix + "{productID}/{rest...}"

	Cart                    = "/cart"
	CartPrefix              = "/cart/"
	CartItems               = "/cart/items"
	CartClear               = "/cart/clear"
	CartItemQuantityPattern = CartPrefix + "items/{lineID}/quantity"
	CartItemRemovePattern   = CartPrefix + "items/{lineID}/remove"
	CartRestPattern         = CartPrefix + "{rest...}"

	Wishlist                  = "/wishlist"
	WishlistPrefix            = "/wishlist/"
	WishlistItems             = "/wishlist/items"
	WishlistItemRemovePattern = WishlistPrefix + "items/{productID}/remove"
	WishlistItemMovePattern   = WishlistPrefix + "items/{productID}/move"
	WishlistItemTogglePattern = WishlistPrefix + "items/{productID}/toggle"
	WishlistRestPattern       = WishlistPrefix + "{rest...}"

	Contact            = "/contact"
	ContactPrefix      = "/contact/"
	ContactRestPattern = ContactPrefix + "{rest...}"

	NotificationsPrefix        = "/notifications/"
	Notifications              = "/notifications"
	NotificationDismissPattern = NotificationsPrefix + "{notificationID}/dismiss"
	NotificationsRestPattern   = NotificationsPrefix + "{rest...}"

	Admin            = "/admin"
	AdminPrefix      = "/admin/"
	AdminRestPattern = AdminPrefix + "{rest...}"
)

// Product returns the product detail route.
func Product(productID string) string {
	return ProductsPrefix + escapeSegment(productID)
}

// ProductsWithQuery returns the catalog route with a filter query.
func ProductsWithQuery(values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return Products
	}
	return Products + "?" + encoded
}

// CartItemQuantity returns the cart line quantity-update route.
func CartItemQuantity(lineID string) string {
	return CartPrefix + "items/" + escapeSegment(lineID) + "/quantity"
}

// CartItemRemove returns the cart line remove route.
func CartItemRemove(lineID string) string {
	return CartPrefix + "items/" + escapeSegment(lineID) + "/remove"
}

// WishlistItemRemove returns the wishlist remove route.
func WishlistItemRemove(productID string) string {
	return WishlistPrefix + "items/" + escapeSegment(productID) + "/remove"
}

// WishlistItemMove returns the wishlist move-to-cart route.
func WishlistItemMove(productID string) string {
	return WishlistPrefix + "items/" + escapeSegment(productID) + "/move"
}

// WishlistItemToggle returns the wishlist toggle route used by product cards.
func WishlistItemToggle(productID string) string {
	return WishlistPrefix + "items/" + escapeSegment(productID) + "/toggle"
}

// NotificationDismiss returns the notification dismiss route.
func NotificationDismiss(notificationID string) string {
	return NotificationsPrefix + escapeSegment(notificationID) + "/dismiss"
}

// SafeReturn returns target when it is a local absolute path, otherwise fallback.
func SafeReturn(target string, fallback string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return fallback
	}
	parsed, err := url.Parse(target)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return fallback
	}
	return target
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
