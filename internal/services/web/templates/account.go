package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

// AuthFormView feeds the sign-in and registration forms.
type AuthFormView struct {
	Register bool
	Name     string
	Email    string
	Error    string
	ReturnTo string
	// DemoEmail and DemoPassword are shown as a sign-in hint when set.
	DemoEmail    string
	DemoPassword string
}

// AuthPage renders the sign-in or registration form.
func AuthPage(view AuthFormView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		action := routepath.Login
		submit := T(loc, "web.account.sign_in")
		if view.Register {
			action = routepath.Register
			submit = T(loc, "web.account.create_account")
		}
		h.raw(`<section class="container auth-card"><form method="post" class="auth-form"`)
		h.href("action", action)
		h.raw(">")
		if view.Error != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(view.Error)
			h.raw("</p>")
		}
		h.hiddenField(httpx.ReturnToField, view.ReturnTo)
		if view.Register {
			writeInput(h, "text", "name", T(loc, "web.account.name"), view.Name, "name", 0)
		}
		writeInput(h, "email", "email", T(loc, "web.account.email"), view.Email, "email", 0)
		autocomplete := "current-password"
		if view.Register {
			autocomplete = "new-password"
		}
		writeInput(h, "password", "password", T(loc, "web.account.password"), "", autocomplete, 0)
		h.raw(`<button type="submit" class="button button-wide">`)
		h.text(submit)
		h.raw("</button></form>")

		h.raw(`<p class="auth-switch">`)
		if view.Register {
			h.text(T(loc, "web.account.have_account"))
			h.raw(` <a href="/login">`)
			h.text(T(loc, "web.account.sign_in"))
		} else {
			h.text(T(loc, "web.account.no_account"))
			h.raw(` <a href="/register">`)
			h.text(T(loc, "web.account.create_account"))
		}
		h.raw("</a></p>")
		if !view.Register && view.DemoEmail != "" {
			h.raw(`<p class="demo-hint">`)
			h.text(T(loc, "web.account.demo_hint", view.DemoEmail, view.DemoPassword))
			h.raw("</p>")
		}
		h.raw("</section>")
	})
}

func writeInput(h *html, kind, name, label, value, autocomplete string, rows int) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw("</span>")
	if rows > 0 {
		h.raw("<textarea required")
		h.attr("name", name)
		h.attr("rows", strconv.Itoa(rows))
		h.raw(">")
		h.text(value)
		h.raw("</textarea></label>")
		return
	}
	h.raw("<input required")
	h.attr("type", kind)
	h.attr("name", name)
	if value != "" {
		h.attr("value", value)
	}
	if autocomplete != "" {
		h.attr("autocomplete", autocomplete)
	}
	h.raw("></label>")
}
