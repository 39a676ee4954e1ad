package app

import (
	"fmt"
	"net/http"
)

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if len(cfg.ProtectedModules) > 0 && cfg.AuthRequired == nil {
		return nil, fmt.Errorf("protected modules require an auth resolver")
	}
	return Compose(ComposeInput{
		AuthRequired:        cfg.AuthRequired,
		Denied:              cfg.Denied,
		PublicModules:       cfg.PublicModules,
		ProtectedModules:    cfg.ProtectedModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
