package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files processed at once when no
// WithConcurrency option is given.
const DefaultConcurrency = 4

// ScanFunc scans one path.
type ScanFunc[T any] func(ctx context.Context, path string) (T, error)

// Result is the outcome of scanning one path.
type Result[T any] struct {
	// Path is the scanned path.
	Path string

	// Value is the scan result. It is the zero value when Err is set.
	Value T

	// Err is the error returned by the scan, or the context error if the
	// scan never started.
	Err error
}

// Processor fans a ScanFunc out over many paths with errgroup, limited to
// a fixed number of concurrent scans.
type Processor[T any] struct {
	scan        ScanFunc[T]
	concurrency int
	logger      *slog.Logger
}

// Option configures a Processor.
type Option func(*config)

type config struct {
	concurrency int
	logger      *slog.Logger
}

// WithConcurrency sets the maximum number of concurrent scans.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch-level logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewProcessor creates a Processor that calls scan for every path.
func NewProcessor[T any](scan ScanFunc[T], opts ...Option) *Processor[T] {
	c := &config{concurrency: DefaultConcurrency, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return &Processor[T]{scan: scan, concurrency: c.concurrency, logger: c.logger}
}

// Concurrency returns the configured concurrency limit.
func (p *Processor[T]) Concurrency() int {
	return p.concurrency
}

// Process scans all paths and returns one Result per path, in input order.
//
// Scan errors are stored in the matching Result and never cancel the other
// scans. The returned error is non-nil only when ctx was cancelled; the
// results of scans that never started then carry the context error.
func (p *Processor[T]) Process(ctx context.Context, paths []string) ([]Result[T], error) {
	p.logger.Debug("starting batch", "total", len(paths), "concurrency", p.concurrency)
	start := time.Now()

	results := make([]Result[T], len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				results[i] = Result[T]{Path: path, Err: err}
				mu.Unlock()
				return err
			}

			value, err := p.scan(ctx, path)
			if err != nil {
				p.logger.Warn("scan failed", "path", path, "error", err)
			} else {
				p.logger.Debug("scan completed", "path", path, "index", i+1, "total", len(paths))
			}

			mu.Lock()
			results[i] = Result[T]{Path: path, Value: value, Err: err}
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	p.logger.Debug("batch complete", "total", len(paths), "elapsed", time.Since(start))
	return results, err
}
