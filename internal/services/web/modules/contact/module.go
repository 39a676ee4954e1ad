package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	storecontact "github.com/arvana/storefront/internal/storefront/contact"
)

// Submitter delivers and records contact submissions.
type Submitter interface {
	Submit(ctx context.Context, submission storecontact.Submission) (storecontact.Message, error)
}

// Module provides the contact page and form submission route.
type Module struct {
	submitter Submitter
	publisher events.Publisher
	base      modulehandler.Base
}

// New returns a contact module. A nil publisher discards contact events.
func New(submitter Submitter, publisher events.Publisher, base modulehandler.Base) Module {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return Module{submitter: submitter, publisher: publisher, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Healthy reports whether submissions can be accepted.
func (m Module) Healthy() bool { return m.submitter != nil }

// Mount wires contact route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.submitter == nil {
		return module.Mount{}, errors.New("contact submitter is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.submitter, m.publisher, m.base))
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
