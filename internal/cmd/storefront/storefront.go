// Package storefront parses storefront command flags and launches the web
// storefront.
package storefront

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/arvana/storefront/internal/platform/cmd"
	"github.com/arvana/storefront/internal/services/web"
	"github.com/arvana/storefront/internal/storefront/storage"
)

// Config holds the storefront command configuration.
type Config struct {
	HTTPAddr            string        `env:"ARVANA_STOREFRONT_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"ARVANA_STOREFRONT_DB_PATH"`
	SessionSecret       string        `env:"ARVANA_STOREFRONT_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"ARVANA_STOREFRONT_SESSION_TTL" envDefault:"24h"`
	ContactEndpoint     string        `env:"ARVANA_STOREFRONT_CONTACT_ENDPOINT"`
	NotificationTTL     time.Duration `env:"ARVANA_STOREFRONT_NOTIFICATION_TTL" envDefault:"5s"`
	Latency             time.Duration `env:"ARVANA_STOREFRONT_LATENCY" envDefault:"300ms"`
	TrustForwardedProto bool          `env:"ARVANA_STOREFRONT_TRUST_FORWARDED_PROTO" envDefault:"false"`
	DemoCredentials     bool          `env:"ARVANA_STOREFRONT_DEMO_CREDENTIALS" envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path; empty keeps accounts and messages in memory")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret used to sign visitor cookies")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle lifetime of a visitor session")
	fs.StringVar(&cfg.ContactEndpoint, "contact-endpoint", cfg.ContactEndpoint, "Absolute URL receiving contact form submissions")
	fs.DurationVar(&cfg.NotificationTTL, "notification-ttl", cfg.NotificationTTL, "How long a notification stays visible")
	fs.DurationVar(&cfg.Latency, "latency", cfg.Latency, "Simulated latency of wishlist and account operations")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie and origin checks")
	fs.BoolVar(&cfg.DemoCredentials, "demo-credentials", cfg.DemoCredentials, "Show the demo account on the sign-in form")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.NotificationTTL <= 0 {
		return Config{}, fmt.Errorf("notification ttl must be positive, got %s", cfg.NotificationTTL)
	}
	if cfg.Latency < 0 {
		return Config{}, fmt.Errorf("latency must not be negative, got %s", cfg.Latency)
	}
	return cfg, nil
}

// Run opens storage and serves the storefront until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStorefront, func(ctx context.Context) error {
		backend, err := storage.Open(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() {
			if err := backend.Close(); err != nil {
				log.Printf("close storage: %v", err)
			}
		}()
		log.Printf("storage backend=%s", backend.Kind)

		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			SessionSecret:       cfg.SessionSecret,
			SessionTTL:          cfg.SessionTTL,
			NotificationTTL:     cfg.NotificationTTL,
			Latency:             cfg.Latency,
			ContactEndpoint:     cfg.ContactEndpoint,
			TrustForwardedProto: cfg.TrustForwardedProto,
			DemoCredentials:     cfg.DemoCredentials,
			Directory:           backend.Directory,
			Inbox:               backend.Inbox,
		})
		if err != nil {
			return fmt.Errorf("init storefront server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve storefront: %w", err)
		}
		return nil
	})
}
