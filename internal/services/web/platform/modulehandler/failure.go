package modulehandler

import (
	"errors"

	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/cart"
	"github.com/arvana/storefront/internal/storefront/notify"
	"github.com/arvana/storefront/internal/storefront/session"
	"github.com/arvana/storefront/internal/storefront/wishlist"
)

// FailureMessage maps a failed store operation to visitor-facing copy.
// Unrecognized errors, including interrupted round trips, use the generic
// "not saved" message.
func FailureMessage(loc webtemplates.Localizer, err error) string {
	key := webi18n.NoticeRequestFailedBody
	switch {
	case errors.Is(err, cart.ErrInvalidOption):
		key = webi18n.ErrorInvalidOption
	case errors.Is(err, cart.ErrInvalidQuantity):
		key = webi18n.ErrorInvalidQuantity
	case errors.Is(err, cart.ErrLineNotFound):
		key = webi18n.ErrorLineNotFound
	case errors.Is(err, wishlist.ErrNotFound):
		key = webi18n.ErrorWishlistNotFound
	}
	return webtemplates.T(loc, key)
}

// NotifyFailure queues an error notification describing err.
func (b Base) NotifyFailure(visitor *session.Visitor, loc webtemplates.Localizer, err error) {
	b.Notify(visitor, notify.KindError, webtemplates.T(loc, webi18n.NoticeRequestFailedTitle), FailureMessage(loc, err))
}
