// Package webtest provides shared helpers for web module tests.
package webtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/arvana/storefront/internal/services/web/platform/webctx"
	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/latency"
	"github.com/arvana/storefront/internal/storefront/session"
)

// NewRegistry returns a session registry backed by an in-memory directory
// holding the demo account. The registry is closed when the test ends.
func NewRegistry(t *testing.T, l latency.Latency) *session.Registry {
	t.Helper()
	directory, err := auth.NewMemoryDirectory()
	if err != nil {
		t.Fatalf("NewMemoryDirectory() error = %v", err)
	}
	registry, err := session.NewRegistry(session.Config{TTL: time.Hour, Directory: directory, Latency: l})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(registry.Close)
	return registry
}

// NewVisitor returns a fresh visitor with instant round trips.
func NewVisitor(t *testing.T) *session.Visitor {
	t.Helper()
	visitor, err := NewRegistry(t, nil).Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return visitor
}

// Request builds a request carrying visitor. Non-nil form values are encoded
// as the request body.
func Request(method, target string, form url.Values, visitor *session.Visitor) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if visitor != nil {
		req = req.WithContext(webctx.WithVisitor(req.Context(), visitor))
	}
	return req
}

// Serve runs req through h and returns the recorder.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// WithVisitor wraps h so every request carries visitor.
func WithVisitor(h http.Handler, visitor *session.Visitor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(webctx.WithVisitor(r.Context(), visitor)))
	})
}
