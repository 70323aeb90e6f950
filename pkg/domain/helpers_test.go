package domain_test

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

type filterFunc func(tags domain.Tags, pending bool) bool

func (f filterFunc) ShouldSkip(tags domain.Tags, pending bool) bool {
	return f(tags, pending)
}

type testInstance struct {
	filter domain.TagFilter
	bound  *domain.Context
}

func (i *testInstance) TagFilter() domain.TagFilter { return i.filter }
func (i *testInstance) ConvertError(err error) error { return err }
func (i *testInstance) SetContext(c *domain.Context) { i.bound = c }

// recorder is a LiveFormatter that keeps one line per call.
type recorder struct {
	lines []string
}

func (r *recorder) WriteContext(c *domain.Context) {
	r.lines = append(r.lines, "ctx:"+c.Name)
}

func (r *recorder) WriteExample(e *domain.Example, level int) {
	r.lines = append(r.lines, fmt.Sprintf("ex:%s:%d:%s", e.Name, level, e.Status()))
}

// trace collects hook names in call order.
type trace []string

func (t *trace) hook(name string) domain.Action {
	return func() { *t = append(*t, name) }
}

func (t *trace) instanceHook(name string) domain.InstanceAction {
	return func(domain.Instance) { *t = append(*t, name) }
}
