package templates

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/a-h/templ"
)

// html accumulates markup for one component render and keeps the first
// write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized URL attribute.
func (h *html) href(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a markup writer into a templ component.
func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

// hiddenField writes a hidden form input.
func (h *html) hiddenField(name, value string) {
	h.raw(`<input type="hidden"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(">")
}

// postButton writes a single-button POST form.
func (h *html) postButton(action, class, label string, fields map[string]string) {
	h.raw(`<form method="post"`)
	h.href("action", action)
	h.raw(` class="inline-form">`)
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		h.hiddenField(name, fields[name])
	}
	h.raw(`<button type="submit"`)
	h.attr("class", class)
	h.raw(">")
	h.text(label)
	h.raw("</button></form>")
}
