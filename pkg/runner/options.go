package runner

import (
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithFormatter configures the live formatter receiving context headers and
// example results while the tree runs.
func WithFormatter(f domain.LiveFormatter) Option {
	return func(r *Runner) {
		r.Formatter = f
	}
}

// WithFailFast stops the run after the first failing example.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) {
		r.FailFast = enabled
	}
}

// WithTrim removes contexts and examples that did not run from the tree
// before the report is built.
func WithTrim(enabled bool) Option {
	return func(r *Runner) {
		r.Trim = enabled
	}
}

// WithMetrics records example and run metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithSignals cancels the run context on SIGINT or SIGTERM.
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.HandleSignals = enabled
	}
}
