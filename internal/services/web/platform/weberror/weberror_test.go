package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/arvana/storefront/internal/services/web/module"
	apperrors "github.com/arvana/storefront/internal/services/web/platform/errors"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

type stubResolver struct{ viewer module.Viewer }

func (s stubResolver) ResolveRequestViewer(*http.Request) module.Viewer { return s.viewer }
func (stubResolver) ResolveRequestLanguage(*http.Request) string        { return "en" }

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusBadRequest:          false,
		http.StatusConflict:            false,
		http.StatusForbidden:           false,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestWriteModuleErrorRendersAppErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"), stubResolver{viewer: module.Viewer{CartCount: 2}})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="container error-state"`) {
		t.Fatalf("body missing error state marker: %q", body)
	}
	if !strings.Contains(body, `id="cart-count">2</span>`) {
		t.Fatalf("error page lost viewer chrome: %q", body)
	}
}

func TestWriteModuleErrorRendersHTMXErrorWithoutDocument(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, errors.New("boom"), nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(strings.ToLower(rr.Body.String()), "<!doctype html") {
		t.Fatalf("expected HTMX error without document wrapper")
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/cart/items", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.English)
	err := apperrors.EK(apperrors.KindConflict, webi18n.ErrorEmailTaken, "duplicate")
	if got := PublicMessage(loc, err); got != "An account with this email already exists." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}
