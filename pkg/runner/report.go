package runner

import (
	"time"

	"github.com/aretw0/arbor/pkg/domain"
)

// Report is the outcome of a run.
type Report struct {
	RunID    string
	Root     *domain.Context
	Duration time.Duration

	// Total counts examples that ran, pending ones included.
	Total   int
	Passed  int
	Failed  int
	Pending int
	// Skipped counts examples filtered out or never reached.
	Skipped int

	Failures []*domain.Example
	// ContextFailures are contexts whose beforeAll or afterAll failed.
	ContextFailures []*domain.Context

	Interrupted bool
}

// NewReport summarizes root after it has run.
func NewReport(runID string, root *domain.Context, d time.Duration) *Report {
	r := &Report{RunID: runID, Root: root, Duration: d}

	for _, e := range root.AllExamples() {
		switch e.Status() {
		case domain.StatusPassed:
			r.Passed++
		case domain.StatusFailed:
			r.Failed++
			r.Failures = append(r.Failures, e)
		case domain.StatusPending:
			r.Pending++
		default:
			r.Skipped++
			continue
		}
		r.Total++
	}

	for _, c := range root.AllContexts() {
		if c.Err != nil {
			r.ContextFailures = append(r.ContextFailures, c)
		}
	}
	return r
}

// Success reports whether no example and no context failed and the run was
// not interrupted.
func (r *Report) Success() bool {
	return r.Failed == 0 && len(r.ContextFailures) == 0 && !r.Interrupted
}
