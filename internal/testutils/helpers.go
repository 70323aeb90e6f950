package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

// MustRun runs root with inst and the given options and returns the report.
// It fails the test immediately on a configuration error.
func MustRun(t testing.TB, root *domain.Context, inst domain.Instance, opts ...runner.Option) *runner.Report {
	t.Helper()

	report, err := runner.New(opts...).Run(context.Background(), root, inst)
	require.NoError(t, err, "run returned a configuration error")
	require.NotNil(t, report)

	return report
}

// Recorder is a LiveFormatter that keeps one line per call:
// "ctx:<name>" for headers and "ex:<name>:<level>:<status>" for examples.
type Recorder struct {
	Lines []string
}

func (r *Recorder) WriteContext(c *domain.Context) {
	r.Lines = append(r.Lines, "ctx:"+c.Name)
}

func (r *Recorder) WriteExample(e *domain.Example, level int) {
	r.Lines = append(r.Lines, fmt.Sprintf("ex:%s:%d:%s", e.Name, level, e.Status()))
}
