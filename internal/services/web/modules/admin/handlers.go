package admin

import (
	"net/http"
	"strings"

	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/contact"
	"golang.org/x/text/cases"
)

type handlers struct {
	modulehandler.Base
	catalog Catalog
	stats   StatsSource
	inbox   Inbox
}

func newHandlers(c Catalog, stats StatsSource, inbox Inbox, base modulehandler.Base) handlers {
	return handlers{Base: base, catalog: c, stats: stats, inbox: inbox}
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	messages, err := h.inbox.Messages(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	products := h.catalog.Products()
	view := webtemplates.AdminView{
		Tab:        parseTab(r.URL.Query().Get("tab")),
		Stats:      h.stats.Stats(len(products), contact.UnreadCount(messages)),
		Query:      strings.TrimSpace(r.URL.Query().Get("q")),
		Categories: h.catalog.Categories(),
		Messages:   messages,
	}
	view.Products = products
	if view.Tab == webtemplates.AdminTabProducts {
		view.Products = searchByName(products, view.Query)
	}
	header := &webtemplates.MainHeader{Title: webtemplates.T(loc, "web.title.admin")}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.AdminPage(view, loc))
}

func parseTab(raw string) string {
	switch tab := strings.TrimSpace(raw); tab {
	case webtemplates.AdminTabProducts, webtemplates.AdminTabMessages:
		return tab
	default:
		return webtemplates.AdminTabDashboard
	}
}

// searchByName keeps products whose name contains query, ignoring case.
func searchByName(products []catalog.Product, query string) []catalog.Product {
	if query == "" {
		return products
	}
	folder := cases.Fold()
	needle := folder.String(query)
	out := make([]catalog.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(folder.String(product.Name), needle) {
			out = append(out, product)
		}
	}
	return out
}
