package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
)

// RunIDSetter is implemented by formatters that stamp their output with the run ID.
type RunIDSetter interface {
	SetRunID(id string)
}

// Summarizer is implemented by formatters that print a closing summary.
type Summarizer interface {
	WriteSummary(r *Report) error
}

// Runner executes a context tree and reports the outcome.
type Runner struct {
	// Logger is used for run level logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Formatter receives live results. If nil, results are only collected.
	Formatter domain.LiveFormatter

	FailFast      bool
	Trim          bool
	HandleSignals bool

	// Metrics, when set, observes every written example and the run outcome.
	Metrics *observability.Metrics

	newID func() string
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run binds inst to root, runs the tree and returns the report.
// The only error returned is a configuration error; example and hook failures
// are contained in the report.
func (r *Runner) Run(ctx context.Context, root *domain.Context, inst domain.Instance) (*Report, error) {
	runID := r.newID()
	logger := r.Logger.With("run_id", runID)

	var signals *SignalManager
	if r.HandleSignals {
		signals = NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	f := r.resolveFormatter(runID, logger)

	if inst != nil {
		root.Build(inst)
	}

	logger.Info("run started",
		"examples", len(root.AllExamples()),
		"fail_fast", r.FailFast,
	)

	start := time.Now()
	if err := root.Run(ctx, f, r.FailFast, inst); err != nil {
		logger.Error("run aborted", "error", err)
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	elapsed := time.Since(start)

	if r.Trim {
		root.TrimSkippedDescendants()
	}

	report := NewReport(runID, root, elapsed)
	report.Interrupted = signals != nil && signals.Interrupted()

	for _, c := range report.ContextFailures {
		logger.Warn("context failed", "context", c.FullName(), "error", c.Err)
	}
	if r.Metrics != nil {
		r.Metrics.ObserveRun(report.Success(), len(report.ContextFailures), elapsed)
	}

	logger.Info("run finished",
		"passed", report.Passed,
		"failed", report.Failed,
		"pending", report.Pending,
		"skipped", report.Skipped,
		"duration", elapsed,
	)

	if s, ok := r.Formatter.(Summarizer); ok {
		if err := s.WriteSummary(report); err != nil {
			logger.Warn("failed to write summary", "error", err)
		}
	}
	return report, nil
}

func (r *Runner) resolveFormatter(runID string, logger *slog.Logger) domain.LiveFormatter {
	if s, ok := r.Formatter.(RunIDSetter); ok {
		s.SetRunID(runID)
	}

	var f domain.LiveFormatter = &loggingFormatter{logger: logger, next: r.Formatter}
	if r.Metrics != nil {
		f = r.Metrics.Formatter(f)
	}
	return f
}

// loggingFormatter logs every reported example at debug level.
type loggingFormatter struct {
	logger *slog.Logger
	next   domain.LiveFormatter
}

func (f *loggingFormatter) WriteContext(c *domain.Context) {
	if f.next != nil {
		f.next.WriteContext(c)
	}
}

func (f *loggingFormatter) WriteExample(e *domain.Example, level int) {
	if e.Failed() {
		f.logger.Debug("example failed", "example", e.FullName(), "error", e.Err)
	} else {
		f.logger.Debug("example finished", "example", e.FullName(), "status", e.Status(), "duration", e.Duration)
	}
	if f.next != nil {
		f.next.WriteExample(e, level)
	}
}
