package formatter

import (
	"errors"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

// Multi forwards every call to each of its formatters in order.
type Multi []domain.LiveFormatter

// NewMulti drops nil formatters.
func NewMulti(formatters ...domain.LiveFormatter) Multi {
	m := make(Multi, 0, len(formatters))
	for _, f := range formatters {
		if f != nil {
			m = append(m, f)
		}
	}
	return m
}

func (m Multi) WriteContext(c *domain.Context) {
	for _, f := range m {
		f.WriteContext(c)
	}
}

func (m Multi) WriteExample(e *domain.Example, level int) {
	for _, f := range m {
		f.WriteExample(e, level)
	}
}

// SetRunID forwards the ID to the formatters that accept one.
func (m Multi) SetRunID(id string) {
	for _, f := range m {
		if s, ok := f.(runner.RunIDSetter); ok {
			s.SetRunID(id)
		}
	}
}

// WriteSummary forwards to every summarizer and joins their errors.
func (m Multi) WriteSummary(r *runner.Report) error {
	var errs []error
	for _, f := range m {
		if s, ok := f.(runner.Summarizer); ok {
			errs = append(errs, s.WriteSummary(r))
		}
	}
	return errors.Join(errs...)
}
