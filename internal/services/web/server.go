// Package web hosts the browser-facing storefront service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dailyharvest/storefront/internal/platform/timeouts"
	webapp "github.com/dailyharvest/storefront/internal/services/web/app"
	module "github.com/dailyharvest/storefront/internal/services/web/module"
	"github.com/dailyharvest/storefront/internal/services/web/modules"
	"github.com/dailyharvest/storefront/internal/services/web/platform/httpx"
	"github.com/dailyharvest/storefront/internal/services/web/platform/observability"
	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
	"github.com/dailyharvest/storefront/internal/services/web/platform/sessioncookie"
	"github.com/dailyharvest/storefront/internal/services/web/routepath"
	"github.com/dailyharvest/storefront/internal/services/web/session"
	webstatic "github.com/dailyharvest/storefront/internal/services/web/static"
	"github.com/dailyharvest/storefront/internal/storefront/auth"
	"github.com/dailyharvest/storefront/internal/storefront/catalog"
	"github.com/dailyharvest/storefront/internal/storefront/sale"
)

const serviceName = "storefront"

// Config defines startup inputs for the storefront service.
type Config struct {
	HTTPAddr string

	// CatalogSource loads product resources. Nil reads the embedded
	// product files.
	CatalogSource    catalog.Source
	CatalogResources []string
	CatalogLoadWait  time.Duration

	SessionTTL    time.Duration
	Authenticator auth.Authenticator
	Tokens        *auth.TokenIssuer
	RequestMeta   requestmeta.SchemePolicy

	Logger *log.Logger
	Now    func() time.Time
}

// Server hosts the storefront HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Authenticator == nil {
		return nil, errors.New("authenticator is required")
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token issuer is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	source := cfg.CatalogSource
	if source == nil {
		source = catalog.NewLoader(catalog.NewFSFetcher(webstatic.FS, webstatic.ProductsDir), catalog.WithLogger(logger))
	}
	resources := cfg.CatalogResources
	if len(resources) == 0 {
		resources = catalog.DefaultResources
	}

	var registryOpts []session.Option
	if cfg.Now != nil {
		registryOpts = append(registryOpts, session.WithClock(cfg.Now))
	}
	sessions := session.NewRegistry(cfg.SessionTTL, registryOpts...)

	deps := module.Dependencies{
		ResolveVisitor:   session.ResolveVisitor,
		ResolveAdmin:     session.AdminResolver(cfg.Tokens, sessioncookie.Admin(cfg.Tokens.TTL(), cfg.RequestMeta)),
		RequestMeta:      cfg.RequestMeta,
		CatalogSource:    source,
		CatalogResources: resources,
		CatalogLoadWait:  cfg.CatalogLoadWait,
		ProductImages:    webstatic.ProductImages(),
		Sale:             sale.NewPanel(),
		Login:            auth.NewGate(cfg.Authenticator, routepath.Admin),
		Tokens:           cfg.Tokens,
		Logger:           logger,
		Now:              cfg.Now,
	}
	h, err := webapp.BuildRootHandler(deps, modules.StorefrontModules(deps), modules.AdminModules(deps))
	if err != nil {
		return nil, err
	}

	visitorCookie := sessioncookie.Visitor(cfg.RequestMeta)
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServerFS(webstatic.FS)))
	rootMux.Handle(routepath.Root, sessions.Middleware(visitorCookie)(h))
	handler := httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger,
			observability.Field{Key: "area", Value: func(r *http.Request) string { return routepath.Area(r.URL.Path) }},
			observability.Field{Key: "visitor", Value: visitorTag(visitorCookie)},
		),
	)
	return otelhttp.NewHandler(handler, serviceName), nil
}

// visitorTag logs a short prefix of the visitor id, or "new" when the
// request arrived without a session cookie.
func visitorTag(cookie sessioncookie.Cookie) func(*http.Request) string {
	return func(r *http.Request) string {
		id, ok := cookie.Read(r)
		if !ok {
			return "new"
		}
		if len(id) > 8 {
			id = id[:8]
		}
		return id
	}
}

// NewServer validates config and constructs a storefront server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose storefront handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server
// stop. On cancellation in-flight requests get timeouts.Shutdown to drain.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("storefront server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("storefront listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown storefront http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve storefront http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
