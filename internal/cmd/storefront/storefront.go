// Package storefront parses storefront flags and launches the web service.
package storefront

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	entrypoint "github.com/dailyharvest/storefront/internal/platform/cmd"
	"github.com/dailyharvest/storefront/internal/platform/otel"
	"github.com/dailyharvest/storefront/internal/services/web"
	"github.com/dailyharvest/storefront/internal/services/web/platform/requestmeta"
	"github.com/dailyharvest/storefront/internal/storefront/auth"
	"github.com/dailyharvest/storefront/internal/storefront/catalog"
)

// Config holds the storefront command configuration. Environment names are
// read with the STOREFRONT_ prefix.
type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	CatalogBaseURL      string        `env:"CATALOG_BASE_URL"`
	CatalogFiles        []string      `env:"CATALOG_FILES" envDefault:"apple.json,grapes.json,orange.json,pear.json" envSeparator:","`
	CatalogLoadWait     time.Duration `env:"CATALOG_LOAD_WAIT" envDefault:"2s"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	AdminUsername       string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword       string        `env:"ADMIN_PASSWORD" envDefault:"admin"`
	AdminPasswordHash   string        `env:"ADMIN_PASSWORD_HASH"`
	SessionSecret       string        `env:"SESSION_SECRET"`
	AdminTokenTTL       time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"8h"`
	TrustForwardedProto bool          `env:"TRUST_FORWARDED_PROTO"`

	Environment     string  `env:"ENVIRONMENT" envDefault:"development"`
	OTelEndpoint    string  `env:"OTEL_ENDPOINT"`
	OTelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"true"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return entrypoint.LoadConfig(fs, args, bindFlags)
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogBaseURL, "catalog-base-url", cfg.CatalogBaseURL, "Base URL serving /products/<name>; empty uses the embedded catalog")
	fs.Func("catalog-files", "Comma-separated product resource names (default "+strings.Join(cfg.CatalogFiles, ",")+")", func(raw string) error {
		cfg.CatalogFiles = splitList(raw)
		return nil
	})
	fs.DurationVar(&cfg.CatalogLoadWait, "catalog-load-wait", cfg.CatalogLoadWait, "How long a products page waits for the catalog before showing the loading state")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle visitor session lifetime")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie and origin checks")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP collector URL; empty disables tracing")
}

// Run starts the storefront web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, lifecycle(cfg), func(ctx context.Context) error {
		serverCfg, err := serverConfig(cfg)
		if err != nil {
			return err
		}
		server, err := web.NewServer(ctx, serverCfg)
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

func lifecycle(cfg Config) entrypoint.Lifecycle {
	return entrypoint.Lifecycle{
		Telemetry: otel.Settings{
			ServiceName: entrypoint.ServiceStorefront,
			Environment: cfg.Environment,
			Endpoint:    cfg.OTelEndpoint,
			Disabled:    !cfg.OTelEnabled,
			SampleRatio: cfg.OTelSampleRatio,
		},
	}
}

func serverConfig(cfg Config) (web.Config, error) {
	credentials, err := auth.NewCredentialStore(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, 0)
	if err != nil {
		return web.Config{}, fmt.Errorf("init admin credentials: %w", err)
	}
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		log.Printf("session secret not set; admin sign-ins will not survive a restart")
	}
	tokens, err := auth.NewTokenIssuer(cfg.SessionSecret, cfg.AdminTokenTTL)
	if err != nil {
		return web.Config{}, fmt.Errorf("init admin tokens: %w", err)
	}
	var source catalog.Source
	if strings.TrimSpace(cfg.CatalogBaseURL) != "" {
		fetcher, err := catalog.NewHTTPFetcher(cfg.CatalogBaseURL, nil)
		if err != nil {
			return web.Config{}, fmt.Errorf("init catalog fetcher: %w", err)
		}
		source = catalog.NewLoader(fetcher)
	}
	return web.Config{
		HTTPAddr:         cfg.HTTPAddr,
		CatalogSource:    source,
		CatalogResources: cfg.CatalogFiles,
		CatalogLoadWait:  cfg.CatalogLoadWait,
		SessionTTL:       cfg.SessionTTL,
		Authenticator:    credentials,
		Tokens:           tokens,
		RequestMeta:      requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
