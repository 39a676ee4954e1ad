// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Notice is one pending visitor notification shown in the page chrome.
type Notice struct {
	ID      string
	Kind    string
	Title   string
	Message string
}

// Viewer contains the visitor-facing chrome data rendered on every page.
type Viewer struct {
	SignedIn      bool
	DisplayName   string
	Email         string
	AvatarURL     string
	CartCount     int
	WishlistCount int
	Notices       []Notice
}

// ResolveViewer resolves page chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in visitor.
type ResolveSignedIn func(*http.Request) bool

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
