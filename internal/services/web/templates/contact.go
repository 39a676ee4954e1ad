package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/arvana/storefront/internal/storefront/contact"
)

// ContactSubjects are the subjects offered by the contact form, as value
// and label key.
var ContactSubjects = []struct{ Value, LabelKey string }{
	{Value: "General Inquiry", LabelKey: "web.contact.subject_general"},
	{Value: "Order Support", LabelKey: "web.contact.subject_order"},
	{Value: "Product Question", LabelKey: "web.contact.subject_product"},
	{Value: "Returns & Exchanges", LabelKey: "web.contact.subject_returns"},
	{Value: "Partnership", LabelKey: "web.contact.subject_partnership"},
	{Value: "Press & Media", LabelKey: "web.contact.subject_press"},
}

var contactChannels = []struct{ titleKey, detail, bodyKey string }{
	{titleKey: "web.contact.email_title", detail: "hello@arvana.com", bodyKey: "web.contact.email_body"},
	{titleKey: "web.contact.call_title", detail: "+1 (555) 123-4567", bodyKey: "web.contact.call_body"},
	{titleKey: "web.contact.visit_title", detail: "123 Fashion Street, NY 10001", bodyKey: "web.contact.visit_body"},
	{titleKey: "web.contact.hours_title", detail: "Mon-Fri: 9am-6pm", bodyKey: "web.contact.hours_body"},
}

var contactFAQ = []aboutBlock{
	{titleKey: "web.contact.faq_returns_q", bodyKey: "web.contact.faq_returns_a"},
	{titleKey: "web.contact.faq_shipping_q", bodyKey: "web.contact.faq_shipping_a"},
	{titleKey: "web.contact.faq_international_q", bodyKey: "web.contact.faq_international_a"},
	{titleKey: "web.contact.faq_tracking_q", bodyKey: "web.contact.faq_tracking_a"},
}

// ContactView feeds the contact page. Draft keeps the visitor's input after
// a failed send.
type ContactView struct {
	Draft contact.Submission
	Error string
}

// ContactPage renders contact channels, the contact form and the FAQ.
func ContactPage(view ContactView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="hero hero-compact"><div class="container"><h1>`)
		h.text(T(loc, "web.contact.title"))
		h.raw(`</h1><p class="hero-copy">`)
		h.text(T(loc, "web.contact.intro"))
		h.raw("</p></div></section>")

		h.raw(`<section class="container card-grid contact-channels">`)
		for _, channel := range contactChannels {
			h.raw(`<div class="card"><h3>`)
			h.text(T(loc, channel.titleKey))
			h.raw(`</h3><p class="channel-detail">`)
			h.text(channel.detail)
			h.raw("</p><p>")
			h.text(T(loc, channel.bodyKey))
			h.raw("</p></div>")
		}
		h.raw("</section>")

		h.raw(`<section class="container contact-layout"><form method="post" action="/contact" class="contact-form" name="contact">`)
		h.raw("<h2>")
		h.text(T(loc, "web.contact.form_title"))
		h.raw("</h2>")
		if view.Error != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(view.Error)
			h.raw("</p>")
		}
		h.hiddenField("form-name", contact.FormName)
		writeInput(h, "text", "name", T(loc, "web.contact.name"), view.Draft.Name, "name", 0)
		writeInput(h, "email", "email", T(loc, "web.contact.email"), view.Draft.Email, "email", 0)
		h.raw(`<label class="field"><span>`)
		h.text(T(loc, "web.contact.subject"))
		h.raw(`</span><select name="subject" required><option value="">`)
		h.text(T(loc, "web.contact.subject_placeholder"))
		h.raw("</option>")
		for _, subject := range ContactSubjects {
			h.raw("<option")
			h.attr("value", subject.Value)
			if subject.Value == view.Draft.Subject {
				h.raw(" selected")
			}
			h.raw(">")
			h.text(T(loc, subject.LabelKey))
			h.raw("</option>")
		}
		h.raw("</select></label>")
		writeInput(h, "", "message", T(loc, "web.contact.message"), view.Draft.Message, "", 6)
		h.raw(`<button type="submit" class="button button-wide" data-sending-label="`)
		h.text(T(loc, "web.contact.sending"))
		h.raw(`">`)
		h.text(T(loc, "web.contact.send"))
		h.raw("</button></form>")

		h.raw(`<aside class="faq"><h2>`)
		h.text(T(loc, "web.contact.faq_title"))
		h.raw("</h2><p>")
		h.text(T(loc, "web.contact.faq_copy"))
		h.raw("</p>")
		for _, item := range contactFAQ {
			h.raw("<details><summary>")
			h.text(T(loc, item.titleKey))
			h.raw("</summary><p>")
			h.text(T(loc, item.bodyKey))
			h.raw("</p></details>")
		}
		h.raw(`<div class="card"><h3>`)
		h.text(T(loc, "web.contact.still_questions"))
		h.raw("</h3><p>")
		h.text(T(loc, "web.contact.still_questions_copy"))
		h.raw("</p></div></aside></section>")
	})
}
