package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/dailyharvest/storefront/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName       = "github.com/dailyharvest/storefront/internal/storefront/catalog"
	defaultLimit     = 4
	maxResourceBytes = 1 << 20
)

// DefaultResources lists the product resources shipped with the storefront.
var DefaultResources = []string{"apple.json", "grapes.json", "orange.json", "pear.json"}

// ErrInvalidResource reports a resource name that is not a plain file name.
var ErrInvalidResource = errors.New("invalid resource name")

// Fetcher retrieves the raw bytes of one product resource.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// StatusError reports a non-success HTTP response for a resource.
type StatusError struct {
	Resource   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load %s: status %d", e.Resource, e.StatusCode)
}

// FSFetcher reads resources from dir inside an fs.FS.
type FSFetcher struct {
	fsys fs.FS
	dir  string
}

// NewFSFetcher returns a fetcher reading dir/<name> from fsys.
func NewFSFetcher(fsys fs.FS, dir string) FSFetcher {
	return FSFetcher{fsys: fsys, dir: strings.Trim(strings.TrimSpace(dir), "/")}
}

// Fetch implements Fetcher.
func (f FSFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if f.fsys == nil {
		return nil, fmt.Errorf("failed to load %s: filesystem is not configured", name)
	}
	data, err := fs.ReadFile(f.fsys, path.Join(f.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return data, nil
}

// HTTPFetcher fetches resources from <baseURL>/products/<name>.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher returns a fetcher for baseURL. A nil client gets a traced
// client bounded by timeouts.CatalogFetch.
func NewHTTPFetcher(baseURL string, client *http.Client) (*HTTPFetcher, error) {
	baseURL = strings.TrimSpace(baseURL)
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("catalog base url %q must be absolute", baseURL)
	}
	if client == nil {
		client = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeouts.CatalogFetch,
		}
	}
	return &HTTPFetcher{baseURL: baseURL, client: client}, nil
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	target, err := url.JoinPath(f.baseURL, "products", name)
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Resource: name, StatusCode: resp.StatusCode}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func validateResourceName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidResource, name)
	}
	return nil
}

// Failure records one resource that could not be turned into a product.
type Failure struct {
	Resource string
	Err      error
}

// Result is the outcome of loading a resource list. Products keep the order
// of the requested names, skipping failed ones.
type Result struct {
	Products []Product
	Failures []Failure
}

// Partial reports whether at least one resource failed.
func (r Result) Partial() bool {
	return len(r.Failures) > 0
}

// Source produces a catalog from a resource list.
type Source interface {
	Load(ctx context.Context, names []string) (Result, error)
}

// Loader fetches and parses product resources concurrently.
type Loader struct {
	fetcher Fetcher
	limit   int
	logger  *log.Logger
	tracer  trace.Tracer
}

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency bounds the number of in-flight fetches.
func WithConcurrency(limit int) Option {
	return func(l *Loader) {
		if limit > 0 {
			l.limit = limit
		}
	}
}

// WithLogger sets the logger used for per-resource failures.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader builds a loader over fetcher.
func NewLoader(fetcher Fetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		limit:   defaultLimit,
		logger:  log.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load fetches every name concurrently and returns the parsed products in
// the order of names. A failing resource never aborts the others; it is
// logged and reported in Result.Failures. Load only errors when ctx ends
// before the results are assembled.
func (l *Loader) Load(ctx context.Context, names []string) (Result, error) {
	ctx, span := l.tracer.Start(ctx, "catalog.Load", trace.WithAttributes(attribute.Int("catalog.resources", len(names))))
	defer span.End()

	products := make([]Product, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(l.limit)
	for i, name := range names {
		g.Go(func() error {
			products[i], errs[i] = l.loadOne(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "catalog load cancelled")
		return Result{}, err
	}

	result := Result{Products: make([]Product, 0, len(names))}
	for i, name := range names {
		if errs[i] != nil {
			l.logger.Printf("catalog load failed resource=%s err=%v", name, errs[i])
			result.Failures = append(result.Failures, Failure{Resource: name, Err: errs[i]})
			continue
		}
		result.Products = append(result.Products, products[i])
	}
	span.SetAttributes(
		attribute.Int("catalog.loaded", len(result.Products)),
		attribute.Int("catalog.failed", len(result.Failures)),
	)
	if result.Partial() {
		span.SetStatus(codes.Error, "some catalog resources failed")
	}
	return result, nil
}

func (l *Loader) loadOne(ctx context.Context, name string) (Product, error) {
	if l.fetcher == nil {
		return Product{}, errors.New("catalog fetcher is not configured")
	}
	data, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return Product{}, err
	}
	product, err := Parse(data)
	if err != nil {
		return Product{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return product, nil
}
