// Package cmd holds the process lifecycle shared by storefront commands:
// layered configuration and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dailyharvest/storefront/internal/platform/config"
	"github.com/dailyharvest/storefront/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceStorefront names the storefront web service in telemetry.
const ServiceStorefront = "storefront"

// BindFlags registers flags over a config the environment already filled,
// so every flag defaults to its environment value.
type BindFlags[T any] func(fs *flag.FlagSet, cfg *T)

// LoadConfig reads STOREFRONT_-prefixed environment variables into a T and
// then applies command-line flags registered by bind. Flags win over the
// environment, which wins over envDefault tags.
func LoadConfig[T any](fs *flag.FlagSet, args []string, bind BindFlags[T]) (T, error) {
	var cfg T
	if fs == nil {
		return cfg, errors.New("flag parser is required")
	}
	if err := config.ParseEnvWithPrefix(&cfg, config.EnvPrefix); err != nil {
		return cfg, err
	}
	if bind != nil {
		bind(fs, &cfg)
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

// Lifecycle describes how a storefront process runs.
type Lifecycle struct {
	// Telemetry configures tracing. An empty ServiceName falls back to
	// ServiceStorefront.
	Telemetry otel.Settings
	// ShutdownTimeout bounds the final span flush.
	ShutdownTimeout time.Duration
	Logger          *log.Logger
}

var setupTelemetry = otel.Setup

// Run installs telemetry, executes run and flushes telemetry once run
// returns. A flush failure is logged and does not replace run's error.
func Run(ctx context.Context, lc Lifecycle, run func(context.Context) error) error {
	if run == nil {
		return errors.New("run function is required")
	}
	settings := lc.Telemetry
	settings.ServiceName = strings.TrimSpace(settings.ServiceName)
	if settings.ServiceName == "" {
		settings.ServiceName = ServiceStorefront
	}
	logger := lc.Logger
	if logger == nil {
		logger = log.Default()
	}
	shutdown, err := setupTelemetry(ctx, settings)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	if settings.Enabled() {
		logger.Printf("tracing enabled service=%s endpoint=%s", settings.ServiceName, settings.Endpoint)
	}
	defer func() {
		timeout := lc.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Printf("%s otel shutdown: %v", settings.ServiceName, err)
		}
	}()
	return run(ctx)
}
