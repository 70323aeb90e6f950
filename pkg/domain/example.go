package domain

import (
	"context"
	"time"
)

// Status is the reported outcome of an example.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
	StatusSkipped Status = "skipped"
)

// Example is a leaf unit of work ("it").
type Example struct {
	Name string

	// Context is the owning context, set by Context.AddExample.
	Context *Context

	Tags    Tags
	Pending bool

	// Err holds the first failure captured for this example during the run.
	Err error

	// HasRun reports whether the example took part in the run.
	HasRun bool

	Duration time.Duration

	body      Action
	asyncBody AsyncAction
}

// NewExample declares an example with a synchronous body.
// A nil body declares a pending example.
func NewExample(name string, body Action, opts ...Option) *Example {
	d := applyOptions(opts)
	return &Example{
		Name:    name,
		Tags:    d.tags,
		Pending: d.pending || body == nil,
		body:    body,
	}
}

// NewAsyncExample declares an example whose body is awaited.
func NewAsyncExample(name string, body AsyncAction, opts ...Option) *Example {
	d := applyOptions(opts)
	return &Example{
		Name:      name,
		Tags:      d.tags,
		Pending:   d.pending || body == nil,
		asyncBody: body,
	}
}

// Run marks the example as run and invokes its body unless it is pending.
func (e *Example) Run(ctx context.Context, _ Instance) error {
	e.HasRun = true
	if e.Pending {
		return nil
	}

	start := time.Now()
	defer func() {
		e.Duration = time.Since(start)
	}()

	if e.asyncBody != nil {
		return await(ctx, "example", e.asyncBody)
	}
	if e.body != nil {
		return invoke("example", e.body)
	}
	return nil
}

// ShouldSkip reports whether the filter leaves this example out of the run.
// A nil filter skips nothing.
func (e *Example) ShouldSkip(filter TagFilter) bool {
	if filter == nil {
		return false
	}
	return filter.ShouldSkip(e.Tags, e.Pending)
}

// ShouldNotSkip is the negation of ShouldSkip.
func (e *Example) ShouldNotSkip(filter TagFilter) bool {
	return !e.ShouldSkip(filter)
}

// Failed reports whether the example ran and failed. Pending examples never fail.
func (e *Example) Failed() bool {
	return !e.Pending && e.Err != nil
}

// Status returns the reported outcome. Pending overrides pass and fail.
func (e *Example) Status() Status {
	switch {
	case !e.HasRun:
		return StatusSkipped
	case e.Pending:
		return StatusPending
	case e.Err != nil:
		return StatusFailed
	default:
		return StatusPassed
	}
}

// FullName joins the names of every enclosing context and the example.
func (e *Example) FullName() string {
	if e.Context == nil {
		return e.Name
	}
	return e.Context.FullName() + ". " + e.Name
}

// assignContextErr records a failure from the surrounding hook phases unless the
// example already captured its own.
func (e *Example) assignContextErr(phaseErr error) {
	if phaseErr == nil || e.Err != nil {
		return
	}
	e.Err = &ContextFailureError{Err: phaseErr}
}
