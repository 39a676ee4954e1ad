package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackHomeKey           = "web.error.action_back_home"
)

// AppErrorPageTitle returns the browser page title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the error page body.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="container error-state" data-status="`)
		h.text(http.StatusText(normalizeAppErrorStatus(statusCode)))
		h.raw(`"><h1>`)
		h.text(appErrorHeading(statusCode, loc))
		h.raw("</h1><p>")
		h.text(appErrorMessage(statusCode, loc))
		h.raw(`</p><a class="button" href="/">`)
		h.text(T(loc, appErrorBackHomeKey))
		h.raw("</a></section>")
	})
}
