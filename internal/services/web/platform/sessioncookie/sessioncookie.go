// Package sessioncookie centralizes the storefront visitor cookie.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/arvana/storefront/internal/services/web/platform/requestmeta"
)

// Name is the canonical visitor session cookie name.
const Name = "arvana_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the signed visitor token. A positive maxAge makes the cookie
// persistent; otherwise it lasts for the browser session.
func Write(w http.ResponseWriter, r *http.Request, token string, maxAge time.Duration, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
	if seconds := int(maxAge / time.Second); seconds > 0 {
		cookie.MaxAge = seconds
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
