// SPDX-License-Identifier: MIT

package inference

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer obtained from the global provider.
const instrumentationName = "github.com/katalvlaran/lvbayes/inference"

// Options configures EliminationAsk.
//
// Ordering – elimination order heuristic. Default ReverseTopological.
// Pruning  – drop variables that are not ancestors of a query or evidence
//
//	variable before eliminating. They sum to 1 and never change the
//	answer. Default true.
//
// Logger   – receives Debug records for every elimination step. Default
//
//	discards everything.
//
// Tracer   – opens one span per Ask. Default is the global provider's
//
//	tracer, which is a no-op until the host installs one.
type Options struct {
	Ordering Ordering
	Pruning  bool
	Logger   *slog.Logger
	Tracer   trace.Tracer
}

// Option represents a functional option for configuring EliminationAsk.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Ordering: ReverseTopological{},
		Pruning:  true,
		Logger:   slog.New(slog.DiscardHandler),
		Tracer:   otel.Tracer(instrumentationName),
	}
}

// WithOrdering sets the elimination order heuristic. nil keeps the default.
func WithOrdering(o Ordering) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Ordering = o
		}
	}
}

// WithPruning enables or disables ancestor pruning.
func WithPruning(enabled bool) Option {
	return func(opts *Options) {
		opts.Pruning = enabled
	}
}

// WithLogger routes Debug records to l. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(opts *Options) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithTracer sets the tracer used for Ask spans. nil keeps the default.
func WithTracer(t trace.Tracer) Option {
	return func(opts *Options) {
		if t != nil {
			opts.Tracer = t
		}
	}
}
