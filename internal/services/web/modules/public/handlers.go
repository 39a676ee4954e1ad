package public

import (
	"log"
	"net/http"

	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/platform/webctx"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/browse"
	"github.com/arvana/storefront/internal/storefront/contact"
)

// showcaseLimit caps the products shown on the home page.
const showcaseLimit = 8

type handlers struct {
	modulehandler.Base
	deps Dependencies
}

func newHandlers(deps Dependencies, base modulehandler.Base) handlers {
	return handlers{Base: base, deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	visitor, _ := webctx.RequestVisitor(r)
	criteria := browse.ParseCriteria(r.URL.Query())
	matching := browse.Select(h.deps.Catalog.Products(), criteria)
	showcase := matching
	if len(showcase) > showcaseLimit {
		showcase = showcase[:showcaseLimit]
	}
	view := webtemplates.HomeView{
		Categories: h.deps.Catalog.Categories(),
		Criteria:   criteria,
		Products:   modulehandler.ProductCards(visitor, showcase),
		Matching:   len(matching),
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.title.home"), http.StatusOK, nil, webtemplates.HomePage(view, r.URL.RequestURI(), loc))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.title.about"), http.StatusOK, nil, webtemplates.AboutPage(loc))
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.deps.Healthy != nil && !h.deps.Healthy() {
		http.Error(w, "UNAVAILABLE", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte("OK"))
	}
}

// handleFormCapture is the form endpoint the contact relay posts to when no
// external endpoint is configured. It acknowledges well-formed contact
// submissions and rejects everything else.
func (h handlers) handleFormCapture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	submission, ok := contact.ParseForm(r.PostForm)
	if !ok {
		http.Error(w, "unknown form", http.StatusBadRequest)
		return
	}
	if err := submission.Validate(); err != nil {
		http.Error(w, "invalid submission", http.StatusBadRequest)
		return
	}
	log.Printf("contact form captured subject=%q request_id=%s", submission.Subject, r.Header.Get("X-Request-ID"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
