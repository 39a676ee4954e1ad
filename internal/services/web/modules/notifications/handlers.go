package notifications

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/platform/pagerender"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// handleList renders only the notification region so clients can refresh it
// without a page load.
func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	viewer := h.ResolveRequestViewer(r)
	page := pagerender.PageFor(r, "", lang, nil)
	page.CurrentPath = httpx.ReturnPath(r, routepath.Root)
	var buf bytes.Buffer
	if err := webtemplates.Notices(page, viewer.Notices, loc).Render(r.Context(), &buf); err != nil {
		h.WriteError(w, r, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}

func (h handlers) handleDismiss(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	notificationID := strings.TrimSpace(r.PathValue("notificationID"))
	if notificationID == "" {
		h.WriteNotFound(w, r)
		return
	}
	// Dismissing an already expired notification is not an error.
	visitor.Notifications.Dismiss(notificationID)
	httpx.WriteRedirect(w, r, httpx.ReturnPath(r, routepath.Root))
}
