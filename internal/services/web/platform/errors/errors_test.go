package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{kind: KindInvalidInput, want: http.StatusBadRequest},
		{kind: KindUnauthorized, want: http.StatusUnauthorized},
		{kind: KindForbidden, want: http.StatusForbidden},
		{kind: KindConflict, want: http.StatusConflict},
		{kind: KindUnavailable, want: http.StatusServiceUnavailable},
		{kind: KindNotFound, want: http.StatusNotFound},
		{kind: KindUnknown, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "x")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindForbidden}
	if got := err.Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
}

func TestWrapKeepsCauseAndKey(t *testing.T) {
	t.Parallel()

	cause := errors.New("cart: size not offered")
	err := fmt.Errorf("add line: %w", Wrap(KindInvalidInput, "web.cart.error_invalid_option", cause))
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false")
	}
	if got := HTTPStatus(err); got != http.StatusBadRequest {
		t.Fatalf("HTTPStatus(err) = %d, want %d", got, http.StatusBadRequest)
	}
	if got := LocalizationKey(err); got != "web.cart.error_invalid_option" {
		t.Fatalf("LocalizationKey(err) = %q", got)
	}
	if got := KindOf(err); got != KindInvalidInput {
		t.Fatalf("KindOf(err) = %q", got)
	}
	if got := err.Error(); got != "add line: cart: size not offered" {
		t.Fatalf("Error() = %q", got)
	}
	if Wrap(KindConflict, "k", nil) != nil {
		t.Fatalf("Wrap(nil) != nil")
	}
}

func TestLocalizationKeyReturnsStructuredKey(t *testing.T) {
	t.Parallel()

	err := EK(KindInvalidInput, "web.account.error_invalid_credentials", "invalid credentials")
	if got := LocalizationKey(err); got != "web.account.error_invalid_credentials" {
		t.Fatalf("LocalizationKey(err) = %q", got)
	}
	if got := LocalizationKey(errors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey(err) = %q, want empty", got)
	}
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("KindOf(err) = %q, want %q", got, KindUnknown)
	}
}
