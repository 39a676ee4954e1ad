// Package modulehandler provides a composable base for web module handlers.
//
// Every storefront module shares handler infrastructure for visitor lookup,
// localization, page rendering, and error handling. Modules embed Base
// rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/arvana/storefront/internal/services/web/module"
	apperrors "github.com/arvana/storefront/internal/services/web/platform/errors"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/pagerender"
	"github.com/arvana/storefront/internal/services/web/platform/webctx"
	"github.com/arvana/storefront/internal/services/web/platform/weberror"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/session"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	resolveLanguage module.ResolveLanguage
	resolveViewer   module.ResolveViewer
}

// NewBase builds a handler base from explicit resolver functions.
func NewBase(resolveLanguage module.ResolveLanguage, resolveViewer module.ResolveViewer) Base {
	return Base{
		resolveLanguage: resolveLanguage,
		resolveViewer:   resolveViewer,
	}
}

// NewTestBase builds a handler base that derives chrome from the request
// visitor, suitable for module tests.
func NewTestBase() Base {
	return Base{
		resolveLanguage: func(*http.Request) string { return "" },
		resolveViewer:   ViewerFromRequest,
	}
}

// ResolveRequestViewer resolves page chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// Visitor returns the visitor attached to the request by the session
// middleware.
func (b Base) Visitor(r *http.Request) (*session.Visitor, error) {
	visitor, ok := webctx.RequestVisitor(r)
	if !ok {
		return nil, apperrors.E(apperrors.KindUnavailable, "request has no visitor")
	}
	return visitor, nil
}

// Notify queues a notification for the visitor.
func (b Base) Notify(visitor *session.Visitor, kind notify.Kind, title, message string) {
	if visitor == nil || visitor.Notifications == nil {
		return
	}
	visitor.Notifications.Add(kind, title, message)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, &b)
}

// WriteNotFound renders a 404 error page within the site chrome.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, &b)
}

// WritePage renders a full module page (HTMX-aware) with the given title,
// header, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	header *webtemplates.MainHeader,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, &b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     header,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// ViewerFromRequest derives page chrome from the request visitor.
func ViewerFromRequest(r *http.Request) module.Viewer {
	visitor, ok := webctx.RequestVisitor(r)
	if !ok {
		return module.Viewer{}
	}
	return ViewerFor(visitor)
}

// ViewerFor derives page chrome from a visitor's stores.
func ViewerFor(visitor *session.Visitor) module.Viewer {
	viewer := module.Viewer{}
	if visitor == nil {
		return viewer
	}
	if visitor.Auth != nil {
		if profile, ok := visitor.Auth.Profile(); ok {
			viewer.SignedIn = true
			viewer.DisplayName = profile.Name
			viewer.Email = profile.Email
			viewer.AvatarURL = profile.AvatarURL
		}
	}
	if visitor.Cart != nil {
		viewer.CartCount = visitor.Cart.Snapshot().Count()
	}
	if visitor.Wishlist != nil {
		viewer.WishlistCount = visitor.Wishlist.Count()
	}
	if visitor.Notifications != nil {
		for _, n := range visitor.Notifications.List() {
			viewer.Notices = append(viewer.Notices, module.Notice{
				ID:      n.ID,
				Kind:    string(n.Kind),
				Title:   n.Title,
				Message: n.Message,
			})
		}
	}
	return viewer
}
