package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/arvana/storefront/internal/services/web/module"
)

func TestBuildRootHandlerRequiresAuthResolverForProtectedModules(t *testing.T) {
	t.Parallel()

	if _, err := BuildRootHandler(Config{ProtectedModules: []module.Module{stub("admin", "/admin/")}}); err == nil {
		t.Fatalf("BuildRootHandler() error = nil, want missing auth resolver error")
	}
}

func TestBuildRootHandlerAppliesAuthResolver(t *testing.T) {
	t.Parallel()

	h, err := BuildRootHandler(Config{
		PublicModules:    []module.Module{stub("public", "/")},
		ProtectedModules: []module.Module{stub("admin", "/admin/")},
		AuthRequired:     func(r *http.Request) bool { return r.Header.Get("X-Signed-In") == "1" },
	})
	if err != nil {
		t.Fatalf("BuildRootHandler() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Signed-In", "1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}
