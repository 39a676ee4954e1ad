package modulehandler

import (
	"context"
	"log"

	"github.com/arvana/storefront/internal/platform/events"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/session"
)

// HTMX client events announced after successful mutations so the header
// badges can refresh.
const (
	EventCartChanged     = "cart:changed"
	EventWishlistChanged = "wishlist:changed"
)

// ProductCards pairs products with the visitor's wishlist membership.
func ProductCards(visitor *session.Visitor, products []catalog.Product) []webtemplates.ProductCard {
	cards := make([]webtemplates.ProductCard, 0, len(products))
	for _, product := range products {
		card := webtemplates.ProductCard{Product: product}
		if visitor != nil && visitor.Wishlist != nil {
			card.InWishlist = visitor.Wishlist.Contains(product.ID)
		}
		cards = append(cards, card)
	}
	return cards
}

// Publish sends event with the visitor id filled in. Failures are logged and
// never fail the request.
func Publish(ctx context.Context, publisher events.Publisher, visitor *session.Visitor, event events.Event) {
	if publisher == nil {
		return
	}
	if visitor != nil && event.VisitorID == "" {
		event.VisitorID = visitor.ID
	}
	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Printf("publish event failed type=%s visitor=%s err=%v", event.Type, event.VisitorID, err)
	}
}
