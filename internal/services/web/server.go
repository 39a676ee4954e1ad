package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/arvana/storefront/internal/platform/clock"
	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/platform/timeouts"
	"github.com/arvana/storefront/internal/services/web/app"
	"github.com/arvana/storefront/internal/services/web/modules"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	webi18n "github.com/arvana/storefront/internal/services/web/platform/i18n"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/platform/observability"
	"github.com/arvana/storefront/internal/services/web/platform/requestmeta"
	"github.com/arvana/storefront/internal/services/web/routepath"
	"github.com/arvana/storefront/internal/services/web/static"
	"github.com/arvana/storefront/internal/services/web/transport/httpmux"
	"github.com/arvana/storefront/internal/storefront/activity"
	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/contact"
	"github.com/arvana/storefront/internal/storefront/latency"
	"github.com/arvana/storefront/internal/storefront/session"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSessionTTL      = 24 * time.Hour
	defaultNotificationTTL = 5 * time.Second
	defaultSweepInterval   = time.Minute
	compressionLevel       = 5
)

// Config defines the inputs for the storefront server.
type Config struct {
	HTTPAddr string
	// SessionSecret signs visitor cookies. Empty uses a random per-process key.
	SessionSecret   string
	SessionTTL      time.Duration
	NotificationTTL time.Duration
	// Latency simulates a remote round trip on wishlist and auth operations.
	Latency time.Duration
	// ContactEndpoint receives contact submissions. Empty relays to the
	// storefront's own form capture on HTTPAddr.
	ContactEndpoint     string
	TrustForwardedProto bool
	DemoCredentials     bool
	SweepInterval       time.Duration

	// Directory and Inbox default to in-memory stores seeded with the demo
	// account and sample messages.
	Directory auth.Directory
	Inbox     contact.Inbox
	// Deliverer overrides the HTTP contact relay.
	Deliverer contact.Deliverer
	Catalog   *catalog.Catalog
	Clock     clock.Clock
}

// Server hosts the storefront HTTP server and its background workers.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	registry      *session.Registry
	bus           *events.Bus
	tracker       *activity.Tracker
	sweepInterval time.Duration
}

// NewServer builds a configured storefront server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.NotificationTTL <= 0 {
		cfg.NotificationTTL = defaultNotificationTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if cfg.Directory == nil {
		directory, err := auth.NewMemoryDirectory()
		if err != nil {
			return nil, fmt.Errorf("init auth directory: %w", err)
		}
		cfg.Directory = directory
	}
	if cfg.Inbox == nil {
		cfg.Inbox = contact.NewMemoryInbox(contact.SeedMessages()...)
	}
	if cfg.Deliverer == nil {
		relay, err := contact.NewRelay(contactEndpoint(cfg.ContactEndpoint, httpAddr), nil)
		if err != nil {
			return nil, fmt.Errorf("init contact relay: %w", err)
		}
		cfg.Deliverer = relay
	}

	var simulated latency.Latency = latency.None{}
	if cfg.Latency > 0 {
		simulated = latency.Delay(cfg.Latency)
	}
	registry, err := session.NewRegistry(session.Config{
		TTL:             cfg.SessionTTL,
		NotificationTTL: cfg.NotificationTTL,
		Latency:         simulated,
		Directory:       cfg.Directory,
		Clock:           cfg.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("init session registry: %w", err)
	}
	tokens, err := session.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("init session tokens: %w", err)
	}
	contactService, err := contact.NewService(cfg.Deliverer, cfg.Inbox, cfg.Clock)
	if err != nil {
		return nil, fmt.Errorf("init contact service: %w", err)
	}

	bus := events.NewBus()
	tracker := activity.NewTracker(activity.DefaultBaseline())
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}

	handler, err := newRootHandler(rootDependencies{
		modules: modules.Dependencies{
			Catalog:         cfg.Catalog,
			Publisher:       bus,
			Contact:         contactService,
			Stats:           tracker,
			DemoCredentials: cfg.DemoCredentials,
			Healthy:         func() bool { return true },
		},
		visitors: visitorSessions{registry: registry, tokens: tokens, maxAge: cfg.SessionTTL, policy: policy},
		policy:   policy,
	})
	if err != nil {
		_ = bus.Close()
		registry.Close()
		return nil, err
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		registry:      registry,
		bus:           bus,
		tracker:       tracker,
		sweepInterval: cfg.SweepInterval,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe serves HTTP, sweeps idle visitors and feeds the activity
// tracker until ctx ends or one of them fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("storefront server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	consume, err := s.bus.Subscribe(groupCtx, s.tracker.Handle)
	if err != nil {
		return fmt.Errorf("subscribe activity tracker: %w", err)
	}
	group.Go(consume)
	group.Go(func() error {
		return s.registry.Run(groupCtx, s.sweepInterval)
	})
	group.Go(func() error {
		serveErr := make(chan error, 1)
		log.Printf("storefront listening on %s", s.httpAddr)
		go func() {
			serveErr <- s.httpServer.ListenAndServe()
		}()

		select {
		case <-groupCtx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
			err := s.httpServer.Shutdown(shutdownCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			return nil
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve http: %w", err)
		}
	})
	group.Go(func() error {
		<-groupCtx.Done()
		return s.bus.Close()
	})
	return group.Wait()
}

// Close releases visitor state and the event bus.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.bus != nil {
		if err := s.bus.Close(); err != nil {
			log.Printf("close event bus: %v", err)
		}
	}
	if s.registry != nil {
		s.registry.Close()
	}
}

type rootDependencies struct {
	modules  modules.Dependencies
	visitors visitorSessions
	policy   requestmeta.SchemePolicy
}

func newRootHandler(deps rootDependencies) (http.Handler, error) {
	resolvers := modules.ModuleResolvers{
		ResolveViewer:   modulehandler.ViewerFromRequest,
		ResolveSignedIn: signedIn,
		ResolveLanguage: resolveLanguage,
	}
	composed, err := app.BuildRootHandler(app.Config{
		PublicModules:       modules.DefaultPublicModules(deps.modules, resolvers),
		ProtectedModules:    modules.DefaultProtectedModules(deps.modules, resolvers),
		AuthRequired:        signedIn,
		Denied:              http.HandlerFunc(accessDenied),
		RequestSchemePolicy: deps.policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	root := http.NewServeMux()
	httpmux.MountStatic(root, static.FS)
	httpmux.MountSite(root, deps.visitors.middleware(composed))

	return otelhttp.NewHandler(httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(nil),
		httpx.RecoverPanic(),
		middleware.Compress(compressionLevel),
		middleware.Timeout(timeouts.Request),
	), "storefront"), nil
}

func resolveLanguage(r *http.Request) string {
	tag, _ := webi18n.ResolveTag(r)
	return tag.String()
}

// contactEndpoint resolves the relay target, defaulting to the storefront's
// own form capture.
func contactEndpoint(configured, httpAddr string) string {
	if endpoint := strings.TrimSpace(configured); endpoint != "" {
		return endpoint
	}
	host, port, err := net.SplitHostPort(httpAddr)
	if err != nil {
		return "http://" + httpAddr + routepath.Root
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + routepath.Root
}
