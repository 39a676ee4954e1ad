package contact

import (
	"errors"
	"log"
	"net/http"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	storecontact "github.com/arvana/storefront/internal/storefront/contact"
	"github.com/arvana/storefront/internal/storefront/notify"
)

type handlers struct {
	modulehandler.Base
	submitter Submitter
	publisher events.Publisher
}

func newHandlers(submitter Submitter, publisher events.Publisher, base modulehandler.Base) handlers {
	return handlers{Base: base, submitter: submitter, publisher: publisher}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, webtemplates.ContactView{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.Visitor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, webtemplates.ContactView{Error: webtemplates.T(loc, webi18n.ErrorInvalidForm)})
		return
	}
	submission := submissionFromForm(r)

	message, err := h.submitter.Submit(r.Context(), submission)
	switch {
	case errors.Is(err, storecontact.ErrInvalidSubmission):
		h.renderPage(w, r, http.StatusBadRequest, webtemplates.ContactView{
			Draft: submission,
			Error: webtemplates.T(loc, webi18n.ErrorInvalidContactSubmission),
		})
		return
	case err != nil:
		log.Printf("contact submission failed visitor=%s err=%v", visitor.ID, err)
		h.Notify(visitor, notify.KindError,
			webtemplates.T(loc, webi18n.NoticeContactFailedTitle),
			webtemplates.T(loc, webi18n.NoticeContactFailedBody))
		h.renderPage(w, r, http.StatusBadGateway, webtemplates.ContactView{Draft: submission})
		return
	}

	h.Notify(visitor, notify.KindSuccess,
		webtemplates.T(loc, webi18n.NoticeContactSentTitle),
		webtemplates.T(loc, webi18n.NoticeContactSentBody))
	modulehandler.Publish(r.Context(), h.publisher, visitor, events.Event{
		Type:       events.TypeContactSubmitted,
		Subject:    message.Subject,
		Attributes: map[string]string{"message_id": message.ID},
	})
	httpx.WriteRedirect(w, r, routepath.Contact)
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ContactView) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.title.contact"), status, nil, webtemplates.ContactPage(view, loc))
}

// submissionFromForm reads the posted contact form. Posts without the form
// name marker still carry the same fields.
func submissionFromForm(r *http.Request) storecontact.Submission {
	if submission, ok := storecontact.ParseForm(r.PostForm); ok {
		return submission
	}
	return storecontact.Submission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}.Normalize()
}
