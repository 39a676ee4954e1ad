package web

import (
	"log"
	"net/http"
	"time"

	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/requestmeta"
	"github.com/arvana/storefront/internal/services/web/platform/sessioncookie"
	"github.com/arvana/storefront/internal/services/web/platform/webctx"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/session"
)

// visitorSessions binds site requests to a live visitor named by the signed
// session cookie. Health checks and cookieless form captures run without one.
type visitorSessions struct {
	registry *session.Registry
	tokens   *session.Tokens
	maxAge   time.Duration
	policy   requestmeta.SchemePolicy
}

func (s visitorSessions) middleware(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if stateless(r) {
			next.ServeHTTP(w, r)
			return
		}
		visitor, err := s.resolve(w, r)
		if err != nil {
			log.Printf("resolve visitor failed path=%s request_id=%s err=%v", r.URL.Path, r.Header.Get("X-Request-ID"), err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r.WithContext(webctx.WithVisitor(r.Context(), visitor)))
	})
}

// resolve returns the cookie's visitor, or a fresh one when the cookie is
// missing, forged, expired or names a swept visitor. The cookie is reissued
// on every request so an active visitor keeps its session.
func (s visitorSessions) resolve(w http.ResponseWriter, r *http.Request) (*session.Visitor, error) {
	visitorID := ""
	if token, ok := sessioncookie.Read(r); ok {
		parsed, err := s.tokens.Parse(token)
		if err == nil {
			visitorID = parsed
		}
	}
	visitor, _, err := s.registry.Resolve(visitorID)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Issue(visitor.ID)
	if err != nil {
		return nil, err
	}
	sessioncookie.Write(w, r, token, s.maxAge, s.policy)
	return visitor, nil
}

// stateless reports requests that never touch visitor state: health checks
// and the relay's cookieless posts to the form capture endpoint.
func stateless(r *http.Request) bool {
	switch r.URL.Path {
	case routepath.Health:
		return r.Method == http.MethodGet || r.Method == http.MethodHead
	case routepath.Root:
		if r.Method != http.MethodPost {
			return false
		}
		_, ok := sessioncookie.Read(r)
		return !ok
	}
	return false
}

func signedIn(r *http.Request) bool {
	visitor, ok := webctx.RequestVisitor(r)
	return ok && visitor.Auth != nil && visitor.Auth.SignedIn()
}

// accessDenied sends signed-out visitors home with an explanation.
func accessDenied(w http.ResponseWriter, r *http.Request) {
	if visitor, ok := webctx.RequestVisitor(r); ok && visitor.Notifications != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
		visitor.Notifications.Add(notify.KindError,
			loc.Sprintf(webi18n.NoticeAccessDeniedTitle),
			loc.Sprintf(webi18n.NoticeAccessDeniedBody),
		)
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}
