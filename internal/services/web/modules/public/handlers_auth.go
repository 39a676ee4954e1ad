package public

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/session"
)

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.renderAuthPage(w, r, http.StatusOK, webtemplates.AuthFormView{ReturnTo: returnTarget(r)})
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	h.renderAuthPage(w, r, http.StatusOK, webtemplates.AuthFormView{Register: true, ReturnTo: returnTarget(r)})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	email := strings.TrimSpace(r.FormValue("email"))
	view := webtemplates.AuthFormView{Email: email, ReturnTo: returnTarget(r)}

	profile, err := visitor.Auth.Login(r.Context(), email, r.FormValue("password"))
	if err != nil {
		h.authFailed(w, r, visitor, view, err)
		return
	}
	h.Notify(visitor, notify.KindSuccess,
		webtemplates.T(loc, webi18n.NoticeWelcomeBackTitle, profile.Name),
		webtemplates.T(loc, webi18n.NoticeWelcomeBackBody))
	modulehandler.Publish(r.Context(), h.deps.Publisher, visitor, events.Event{Type: events.TypeSignedIn, Subject: profile.ID})
	httpx.WriteRedirect(w, r, view.ReturnTo)
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	registration := auth.Registration{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}.Normalize()
	view := webtemplates.AuthFormView{
		Register: true,
		Name:     registration.Name,
		Email:    registration.Email,
		ReturnTo: returnTarget(r),
	}

	profile, err := visitor.Auth.Register(r.Context(), registration)
	if err != nil {
		h.authFailed(w, r, visitor, view, err)
		return
	}
	h.Notify(visitor, notify.KindSuccess,
		webtemplates.T(loc, webi18n.NoticeRegisteredTitle, profile.Name),
		webtemplates.T(loc, webi18n.NoticeRegisteredBody))
	modulehandler.Publish(r.Context(), h.deps.Publisher, visitor, events.Event{Type: events.TypeRegistered, Subject: profile.ID})
	httpx.WriteRedirect(w, r, view.ReturnTo)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	profile, signedIn := visitor.Auth.Profile()
	visitor.Auth.Logout()
	if signedIn {
		h.Notify(visitor, notify.KindInfo,
			webtemplates.T(loc, webi18n.NoticeSignedOutTitle),
			webtemplates.T(loc, webi18n.NoticeSignedOutBody))
		modulehandler.Publish(r.Context(), h.deps.Publisher, visitor, events.Event{Type: events.TypeSignedOut, Subject: profile.ID})
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

// authFailed re-renders the form with a message for credential and
// validation failures. An attempt overtaken by a newer one or by sign-out
// returns home quietly.
func (h handlers) authFailed(w http.ResponseWriter, r *http.Request, visitor *session.Visitor, view webtemplates.AuthFormView, err error) {
	loc, _ := h.PageLocalizer(w, r)
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, auth.ErrSuperseded):
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		view.Error = webtemplates.T(loc, webi18n.ErrorInvalidCredentials)
	case errors.Is(err, auth.ErrEmailTaken):
		status = http.StatusConflict
		view.Error = webtemplates.T(loc, webi18n.ErrorEmailTaken)
	case errors.Is(err, auth.ErrInvalidRegistration):
		view.Error = webtemplates.T(loc, webi18n.ErrorInvalidRegistration, auth.MinPasswordLength)
	default:
		log.Printf("auth attempt failed visitor=%s err=%v", visitor.ID, err)
		status = http.StatusServiceUnavailable
		view.Error = webtemplates.T(loc, webi18n.ErrorUnavailable)
	}
	h.renderAuthPage(w, r, status, view)
}

func (h handlers) renderAuthPage(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AuthFormView) {
	loc, _ := h.PageLocalizer(w, r)
	titleKey := "web.title.login"
	if view.Register {
		titleKey = "web.title.register"
	}
	if h.deps.DemoCredentials {
		view.DemoEmail = auth.DemoEmail
		view.DemoPassword = auth.DemoPassword
	}
	header := &webtemplates.MainHeader{Title: webtemplates.T(loc, titleKey)}
	h.WritePage(w, r, header.Title, status, header, webtemplates.AuthPage(view, loc))
}

// redirectSignedIn sends signed-in visitors past the auth forms.
func (h handlers) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	visitor, err := h.Visitor(r)
	if err != nil || !visitor.Auth.SignedIn() {
		return false
	}
	httpx.WriteRedirect(w, r, returnTarget(r))
	return true
}

// returnTarget is the local page to land on after signing in. The auth forms
// themselves are never a target.
func returnTarget(r *http.Request) string {
	target := routepath.SafeReturn(r.FormValue(httpx.ReturnToField), routepath.Root)
	path, _, _ := strings.Cut(target, "?")
	if path == routepath.Login || path == routepath.Register || path == routepath.Logout {
		return routepath.Root
	}
	return target
}
