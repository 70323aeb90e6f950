package suite

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tags"
)

// Suite is the default domain.Instance. A single Suite is shared by every hook and
// example of the tree it is built into; it is not safe for concurrent use.
type Suite struct {
	filter domain.TagFilter
	root   *domain.Context
	state  map[string]any
	t      *Asserter
}

// Option configures a Suite.
type Option func(*Suite)

// WithFilter sets the tag filter. The default runs every example.
func WithFilter(filter domain.TagFilter) Option {
	return func(s *Suite) {
		s.filter = filter
	}
}

// New creates a Suite.
func New(opts ...Option) *Suite {
	s := &Suite{
		filter: &tags.Filter{},
		state:  make(map[string]any),
		t:      &Asserter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TagFilter implements domain.Instance.
func (s *Suite) TagFilter() domain.TagFilter {
	return s.filter
}

// SetContext implements domain.Instance.
func (s *Suite) SetContext(c *domain.Context) {
	s.root = c
}

// Context returns the root of the tree this suite was built into.
func (s *Suite) Context() *domain.Context {
	return s.root
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// ConvertError implements domain.Instance. Assertion failures are kept as they are;
// any other error gets a stack trace unless it already carries one.
func (s *Suite) ConvertError(err error) error {
	var assertion *AssertionError
	if errors.As(err, &assertion) {
		return err
	}
	var traced stackTracer
	if errors.As(err, &traced) {
		return err
	}
	return errors.WithStack(err)
}

// Set stores a value shared by every hook and example of the tree.
func (s *Suite) Set(key string, value any) {
	s.state[key] = value
}

// Get returns a shared value.
func (s *Suite) Get(key string) (any, bool) {
	v, ok := s.state[key]
	return v, ok
}

// Decode copies a shared value into out, converting loosely typed input such as maps
// read from fixtures into structs.
func (s *Suite) Decode(key string, out any) error {
	v, ok := s.state[key]
	if !ok {
		return errors.Errorf("suite: no value stored under %q", key)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "suite: building decoder")
	}
	return errors.Wrapf(decoder.Decode(v), "suite: decoding %q", key)
}

// T returns an asserter for use with testify's require and assert packages.
func (s *Suite) T() *Asserter {
	return s.t
}

// Of returns the Suite behind an instance handed to an instance-level hook.
// It panics if inst is not a *Suite, which fails the hook.
func Of(inst domain.Instance) *Suite {
	return inst.(*Suite)
}
