// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/browse"
)

// RequestResolver resolves viewer and language state from a request.
// This decouples platform rendering from module handler types.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Header     *webtemplates.MainHeader
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX requests receive the main
// region with out-of-band chrome updates; other requests receive the full
// document. Output is buffered so render failures never leave a partial
// response behind.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var resolveLanguage module.ResolveLanguage
	viewer := module.Viewer{}
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		viewer = resolver.ResolveRequestViewer(r)
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	layoutPage := PageFor(r, page.Title, lang, page.Header)

	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = webtemplates.MainContent(layoutPage, viewer, loc)
	} else {
		component = webtemplates.Layout(layoutPage, viewer, loc)
	}
	var buf bytes.Buffer
	if err := component.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// PageFor builds layout inputs from the request.
func PageFor(r *http.Request, title, lang string, header *webtemplates.MainHeader) webtemplates.Page {
	page := webtemplates.Page{Title: title, Lang: lang, Header: header, CurrentPath: routepath.Root}
	if r == nil || r.URL == nil {
		return page
	}
	page.CurrentPath = r.URL.RequestURI()
	if r.URL.Path == routepath.Products {
		page.Search = r.URL.Query().Get(browse.ParamSearch)
	}
	return page
}
