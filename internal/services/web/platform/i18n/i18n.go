// Package i18n resolves the request language and prints localized storefront
// copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "arvana_lang"
)

var supported = []language.Tag{language.English}

var matcher = language.NewMatcher(supported)

// Localizer formats a localized message.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag matches a raw tag string against the supported set.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	return matchTags([]language.Tag{tag}), true
}

func matchTags(tags []language.Tag) language.Tag {
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return matchTags(tags), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer picks the request language, persists an explicit choice,
// and returns a printer with the language string used for the page.
// resolveLanguage, when set, overrides the header-based resolution.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (Localizer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	if resolveLanguage != nil {
		if resolved, ok := ParseTag(resolveLanguage(r)); ok {
			tag = resolved
		}
	}
	return Printer(tag), tag.String()
}
