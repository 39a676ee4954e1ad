// Package requestmeta resolves request scheme and origin facts used by
// cookies and mutation guards.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request scheme is resolved.
//
// X-Forwarded-Proto is only honored when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Scheme returns "https" or "http" for r.
func (p SchemePolicy) Scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether r should be treated as HTTPS.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.Scheme(r) == "https"
}

// SameOrigin reports whether the Origin header, or failing that the Referer,
// names the scheme, host and port r was addressed to.
func (p SchemePolicy) SameOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	want, ok := p.origin(r)
	if !ok {
		return false
	}
	claim := strings.TrimSpace(r.Header.Get("Origin"))
	if claim == "" {
		claim = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claim == "" {
		return false
	}
	got, ok := parseOrigin(claim)
	return ok && got == want
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (p SchemePolicy) origin(r *http.Request) (origin, bool) {
	scheme := p.Scheme(r)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if host == "" {
		return origin{}, false
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}, true
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	scheme := strings.ToLower(parsed.Scheme)
	host := strings.ToLower(parsed.Hostname())
	if scheme == "" || host == "" {
		return origin{}, false
	}
	port := parsed.Port()
	if port == "" {
		port = defaultPort(scheme)
	}
	if port == "" {
		return origin{}, false
	}
	return origin{scheme: scheme, host: host, port: port}, true
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}
