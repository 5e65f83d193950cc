package harness

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/empiricalab/empirical/internal/dataset"
)

// Harness times functions under test against synthetic datasets.
//
// All targets run through one Harness share its dataset generator, so the
// generator state advances across targets in the order they are run.
//
// Thread-safety: Harness is NOT safe for concurrent use. Runs are strictly
// sequential.
type Harness struct {
	gen    *dataset.Generator
	clock  Clock
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock overrides the clock used to time trials.
func WithClock(c Clock) Option {
	return func(h *Harness) {
		h.clock = c
	}
}

// WithLogger sets the logger for per-size progress (debug level).
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a harness that draws datasets from gen.
// Panics if gen is nil.
func New(gen *dataset.Generator, opts ...Option) *Harness {
	if gen == nil {
		panic("harness: nil dataset generator")
	}
	h := &Harness{
		gen:    gen,
		clock:  SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run times target over every size in spec and returns its Series.
//
// The spec is validated first. Errors from target.Fn or from dataset
// generation are returned unmodified with a nil Series. ctx is checked
// between trials; a call to target.Fn that never returns blocks Run.
func (h *Harness) Run(ctx context.Context, spec Spec, target Target) (*Series, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if target.Fn == nil {
		return nil, newValidationError(ErrCodeMissingFunc, "target", "target %q has no function", target.Name)
	}

	// No walk can time more than universe+1 sizes before generation fails.
	n := spec.Count()
	series := &Series{
		Name:   target.Name,
		Points: make([]Point, 0, min(n, h.gen.Universe()+1)),
	}

	for i := 0; i < n; i++ {
		size := spec.At(i)
		avg, err := h.timeSize(ctx, size, spec.Repeats, target)
		if err != nil {
			return nil, err
		}
		series.Points = append(series.Points, Point{Size: size, Average: avg})
		h.logger.Debug("size timed", "target", target.Name, "size", size, "average", avg)
	}

	return series, nil
}

// timeSize runs the repeat trials for one size and returns their mean.
func (h *Harness) timeSize(ctx context.Context, size, repeats int, target Target) (time.Duration, error) {
	var total time.Duration
	for trial := 0; trial < repeats; trial++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		data, err := h.gen.Generate(size)
		if err != nil {
			h.logger.Debug("dataset generation failed", "target", target.Name, "size", size, "error", err)
			return 0, err
		}

		start := h.clock.Now()
		if err := target.Fn(data); err != nil {
			h.logger.Debug("function under test failed", "target", target.Name, "size", size, "trial", trial, "error", err)
			return 0, err
		}
		elapsed := h.clock.Now().Sub(start)
		if elapsed < 0 {
			elapsed = 0
		}
		total += elapsed
	}
	return total / time.Duration(repeats), nil
}

// RunAll runs every target in order and returns one Series per target.
// Stops at the first error; no Series are returned in that case.
func (h *Harness) RunAll(ctx context.Context, spec Spec, targets []Target) ([]Series, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]Series, 0, len(targets))
	for _, target := range targets {
		h.logger.Info("benchmarking", "target", target.Name, "sizes", spec.Count(), "repeats", spec.Repeats)
		series, err := h.Run(ctx, spec, target)
		if err != nil {
			return nil, err
		}
		out = append(out, *series)
	}
	return out, nil
}
