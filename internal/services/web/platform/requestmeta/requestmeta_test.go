package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		header map[string]string
		policy SchemePolicy
		want   bool
	}{
		{name: "matching origin", target: "http://shop.example/cart/items", header: map[string]string{"Origin": "http://shop.example"}, want: true},
		{name: "matching origin explicit default port", target: "http://shop.example/cart/items", header: map[string]string{"Origin": "http://shop.example:80"}, want: true},
		{name: "matching referer", target: "http://shop.example:8080/cart/items", header: map[string]string{"Referer": "http://shop.example:8080/products"}, want: true},
		{name: "origin wins over referer", target: "http://shop.example/cart/items", header: map[string]string{"Origin": "http://evil.example", "Referer": "http://shop.example/"}, want: false},
		{name: "foreign host", target: "http://shop.example/cart/items", header: map[string]string{"Origin": "http://evil.example"}, want: false},
		{name: "port mismatch", target: "http://shop.example:8080/cart/items", header: map[string]string{"Origin": "http://shop.example:9090"}, want: false},
		{name: "scheme mismatch", target: "https://shop.example/cart/items", header: map[string]string{"Origin": "http://shop.example"}, want: false},
		{name: "no proof", target: "http://shop.example/cart/items", want: false},
		{name: "untrusted forwarded proto ignored", target: "https://shop.example/cart/items", header: map[string]string{"Origin": "http://shop.example", "X-Forwarded-Proto": "http"}, want: false},
		{name: "trusted forwarded proto used", target: "https://shop.example/cart/items", header: map[string]string{"Origin": "http://shop.example", "X-Forwarded-Proto": "http"}, policy: SchemePolicy{TrustForwardedProto: true}, want: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			for key, value := range tc.header {
				req.Header.Set(key, value)
			}
			if got := tc.policy.SameOrigin(req); got != tc.want {
				t.Fatalf("SameOrigin() = %v, want %v", got, tc.want)
			}
		})
	}
	if (SchemePolicy{}).SameOrigin(nil) {
		t.Fatalf("SameOrigin(nil) = true")
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	var policy SchemePolicy
	if policy.IsHTTPS(nil) {
		t.Fatalf("expected nil request to be non-https")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if policy.IsHTTPS(req) {
		t.Fatalf("expected http URL to be non-https")
	}

	req.Header.Set("X-Forwarded-Proto", "https")
	if policy.IsHTTPS(req) {
		t.Fatalf("expected forwarded header to be ignored by default")
	}
	if !(SchemePolicy{TrustForwardedProto: true}).IsHTTPS(req) {
		t.Fatalf("expected trusted forwarded header to be honored")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if !policy.IsHTTPS(req) {
		t.Fatalf("expected TLS request to be https")
	}
}
