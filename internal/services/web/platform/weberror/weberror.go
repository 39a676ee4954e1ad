// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/arvana/storefront/internal/services/web/module"
	apperrors "github.com/arvana/storefront/internal/services/web/platform/errors"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/pagerender"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolver)
		return
	}
	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
