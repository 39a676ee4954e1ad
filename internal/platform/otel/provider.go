// Package otel bootstraps OpenTelemetry tracing for storefront processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/arvana/storefront/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings captures the tracing knobs read from the environment.
type Settings struct {
	Endpoint    string  `env:"ARVANA_OTEL_ENDPOINT"`
	Enabled     string  `env:"ARVANA_OTEL_ENABLED"`
	SampleRatio float64 `env:"ARVANA_OTEL_SAMPLE_RATIO" envDefault:"1"`
	Version     string  `env:"ARVANA_VERSION" envDefault:"dev"`
}

// Active reports whether the settings request an exporter.
func (s Settings) Active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	ratio := s.SampleRatio
	if ratio >= 1 || ratio < 0 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when ARVANA_OTEL_ENDPOINT is empty or
// ARVANA_OTEL_ENABLED is "false", Setup returns a no-op shutdown function and
// no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return noop, fmt.Errorf("otel settings: %w", err)
	}
	return SetupWithSettings(ctx, serviceName, settings)
}

// SetupWithSettings initialises tracing from explicit settings.
func SetupWithSettings(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(settings.Version),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
