package domain

import (
	"slices"
	"strings"
)

// Context is a node in the spec tree ("describe").
type Context struct {
	Name  string
	Level int
	Tags  Tags

	Examples []*Example
	Contexts []*Context
	Hooks    Hooks

	// Parent is nil at the root.
	Parent *Context

	// Err holds the first failure raised by this context's beforeAll or afterAll hooks.
	Err error

	instance Instance
	pending  bool
	written  bool
}

// Option configures a context or an example at declaration time.
type Option func(*declaration)

type declaration struct {
	tags    Tags
	pending bool
}

// WithTags attaches labels parsed with ParseTags.
func WithTags(raw string) Option {
	return func(d *declaration) {
		d.tags.Add(ParseTags(raw)...)
	}
}

// WithPending declares the context or example pending.
func WithPending() Option {
	return func(d *declaration) {
		d.pending = true
	}
}

func applyOptions(opts []Option) declaration {
	d := declaration{tags: Tags{}}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewContext declares a context. Underscores in name are rendered as spaces.
func NewContext(name string, opts ...Option) *Context {
	d := applyOptions(opts)
	return &Context{
		Name:    strings.ReplaceAll(name, "_", " "),
		Tags:    d.tags,
		pending: d.pending,
	}
}

// AddExample attaches an example, copying this context's tags and pending state
// onto it. Both are snapshotted: later changes to the context are not seen.
func (c *Context) AddExample(e *Example) {
	e.Context = c
	e.Tags.Add(c.Tags...)
	c.Examples = append(c.Examples, e)
	e.Pending = e.Pending || c.IsPending()
}

// AddContext attaches a child context one level below this one, copying this
// context's tags onto it.
func (c *Context) AddContext(child *Context) {
	child.Level = c.Level + 1
	child.Parent = c
	child.Tags.Add(c.Tags...)
	c.Contexts = append(c.Contexts, child)
}

// IsPending reports whether this context or any ancestor was declared pending.
func (c *Context) IsPending() bool {
	return c.pending || (c.Parent != nil && c.Parent.IsPending())
}

// AllExamples returns this context's examples followed by those of every descendant,
// depth-first.
func (c *Context) AllExamples() []*Example {
	all := append([]*Example(nil), c.Examples...)
	for _, child := range c.Contexts {
		all = append(all, child.AllExamples()...)
	}
	return all
}

// AllContexts returns this context followed by every descendant, depth-first.
func (c *Context) AllContexts() []*Context {
	return append([]*Context{c}, c.ChildContexts()...)
}

// ChildContexts returns every descendant context, depth-first.
func (c *Context) ChildContexts() []*Context {
	var all []*Context
	for _, child := range c.Contexts {
		all = append(all, child)
		all = append(all, child.ChildContexts()...)
	}
	return all
}

// Failures returns every failed example in this subtree.
func (c *Context) Failures() []*Example {
	var failed []*Example
	for _, e := range c.AllExamples() {
		if e.Failed() {
			failed = append(failed, e)
		}
	}
	return failed
}

// HasAnyFailures reports whether any example in this subtree failed.
func (c *Context) HasAnyFailures() bool {
	return slices.ContainsFunc(c.AllExamples(), (*Example).Failed)
}

// HasAnyExecutedExample reports whether any example in this subtree ran.
func (c *Context) HasAnyExecutedExample() bool {
	return slices.ContainsFunc(c.AllExamples(), func(e *Example) bool { return e.HasRun })
}

// FullName joins the names of this context and its ancestors with ". ".
func (c *Context) FullName() string {
	if c.Parent != nil {
		return c.Parent.FullName() + ". " + c.Name
	}
	return c.Name
}

// GetInstance returns the instance bound to this context or to its nearest ancestor.
func (c *Context) GetInstance() Instance {
	if c.instance != nil {
		return c.instance
	}
	if c.Parent != nil {
		return c.Parent.GetInstance()
	}
	return nil
}

// TrimSkippedDescendants removes every child context without an executed example
// and every example that did not run, recursively.
func (c *Context) TrimSkippedDescendants() {
	c.Contexts = slices.DeleteFunc(c.Contexts, func(child *Context) bool {
		return !child.HasAnyExecutedExample()
	})
	c.Examples = slices.DeleteFunc(c.Examples, func(e *Example) bool {
		return !e.HasRun
	})
	for _, child := range c.Contexts {
		child.TrimSkippedDescendants()
	}
}
