package otel_test

import (
	"context"
	"testing"

	"github.com/arvana/storefront/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("ARVANA_OTEL_ENDPOINT", "")
	t.Setenv("ARVANA_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "storefront-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("ARVANA_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("ARVANA_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "storefront-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsMalformedSampleRatio(t *testing.T) {
	t.Setenv("ARVANA_OTEL_SAMPLE_RATIO", "half")

	if _, err := otel.Setup(context.Background(), "storefront-test"); err == nil {
		t.Fatal("expected sample ratio parse error")
	}
}

func TestSettingsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "empty endpoint", settings: otel.Settings{}, want: false},
		{name: "endpoint set", settings: otel.Settings{Endpoint: "http://collector:4318"}, want: true},
		{name: "disabled", settings: otel.Settings{Endpoint: "http://collector:4318", Enabled: "FALSE"}, want: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.settings.Active(); got != tc.want {
				t.Fatalf("Active() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestSetupWithSettings_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := otel.SetupWithSettings(context.Background(), "storefront-test", otel.Settings{
		Endpoint:    "http://192.0.2.1:4318",
		SampleRatio: 0.5,
		Version:     "test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
