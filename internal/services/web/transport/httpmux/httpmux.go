// Package httpmux mounts the storefront's top-level route groups.
package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/arvana/storefront/internal/services/web/routepath"
)

const staticCacheControl = "public, max-age=3600"

// MountStatic serves staticFS under the static prefix with explicit content
// types for the asset kinds the storefront ships.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.Static, http.FileServerFS(staticFS))
	rootMux.Handle(routepath.Static, WithStaticMime(staticHandler))
}

// MountSite routes every non-static path to site, typically the composed
// module handler wrapped by the visitor session middleware.
func MountSite(rootMux *http.ServeMux, site http.Handler) {
	if rootMux == nil || site == nil {
		return
	}
	rootMux.Handle(routepath.Root, site)
}

// WithStaticMime attaches content-type and cache hints for known static assets.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", staticCacheControl)
		next.ServeHTTP(w, r)
	})
}
