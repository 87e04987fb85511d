// Package otel installs the storefront's OpenTelemetry trace pipeline.
package otel

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings selects where and how much of the storefront's traffic is traced.
type Settings struct {
	ServiceName string
	// Environment is reported as deployment.environment when set.
	Environment string
	// Endpoint is the OTLP/HTTP collector URL. Empty leaves tracing off.
	Endpoint string
	Disabled bool
	// SampleRatio is the share of new traces kept. Values outside (0, 1)
	// keep every trace.
	SampleRatio float64
}

// Enabled reports whether Setup will install a provider.
func (s Settings) Enabled() bool {
	return !s.Disabled && strings.TrimSpace(s.Endpoint) != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	if s.SampleRatio <= 0 || s.SampleRatio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
}

func (s Settings) endpointURL() (string, error) {
	raw := strings.TrimSpace(s.Endpoint)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("otel endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("otel endpoint %q: want an http or https URL", raw)
	}
	return raw, nil
}

// Setup installs a global tracer provider exporting to the configured
// collector. When tracing is off it returns a no-op shutdown and leaves the
// global provider alone.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, s Settings) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !s.Enabled() {
		return noop, nil
	}
	service := strings.TrimSpace(s.ServiceName)
	if service == "" {
		return noop, errors.New("otel service name is required")
	}
	endpoint, err := s.endpointURL()
	if err != nil {
		return noop, err
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	attrs := []attribute.KeyValue{semconv.ServiceName(service)}
	if env := strings.TrimSpace(s.Environment); env != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(env))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(s.sampler()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
