package storefront

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("SessionTTL = %s, want 24h", cfg.SessionTTL)
	}
	if cfg.NotificationTTL != 5*time.Second {
		t.Fatalf("NotificationTTL = %s, want 5s", cfg.NotificationTTL)
	}
	if cfg.Latency != 300*time.Millisecond {
		t.Fatalf("Latency = %s, want 300ms", cfg.Latency)
	}
	if cfg.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = true, want false")
	}
	if !cfg.DemoCredentials {
		t.Fatalf("DemoCredentials = false, want true")
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("ARVANA_STOREFRONT_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("ARVANA_STOREFRONT_DB_PATH", "data/storefront.db")
	t.Setenv("ARVANA_STOREFRONT_LATENCY", "0s")
	t.Setenv("ARVANA_STOREFRONT_CONTACT_ENDPOINT", "https://forms.example/submit")

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.DBPath != "data/storefront.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/storefront.db")
	}
	if cfg.Latency != 0 {
		t.Fatalf("Latency = %s, want 0s", cfg.Latency)
	}
	if cfg.ContactEndpoint != "https://forms.example/submit" {
		t.Fatalf("ContactEndpoint = %q", cfg.ContactEndpoint)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ARVANA_STOREFRONT_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-demo-credentials=false", "-session-ttl", "1h"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.DemoCredentials {
		t.Fatalf("DemoCredentials = true, want false")
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("SessionTTL = %s, want 1h", cfg.SessionTTL)
	}
}

func TestParseConfigRejectsInvalidDurations(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero session ttl", args: []string{"-session-ttl", "0s"}},
		{name: "zero notification ttl", args: []string{"-notification-ttl", "0s"}},
		{name: "negative latency", args: []string{"-latency", "-1s"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
			if _, err := ParseConfig(fs, tc.args); err == nil {
				t.Fatalf("ParseConfig(%v) error = nil", tc.args)
			}
		})
	}
}
