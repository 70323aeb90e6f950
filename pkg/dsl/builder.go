package dsl

import (
	"github.com/aretw0/arbor/pkg/domain"
)

// Builder declares the contents of one context.
type Builder struct {
	ctx *domain.Context
}

// Describe declares a root context and runs fn to populate it.
func Describe(name string, fn func(b *Builder), opts ...domain.Option) *domain.Context {
	root := domain.NewContext(name, opts...)
	if fn != nil {
		fn(&Builder{ctx: root})
	}
	return root
}

// For returns a Builder that adds to an existing context.
func For(c *domain.Context) *Builder {
	return &Builder{ctx: c}
}

// Node returns the context being declared.
func (b *Builder) Node() *domain.Context {
	return b.ctx
}

// Context declares a nested context. The child is attached before fn runs, so its
// examples see every tag and the pending state of all enclosing contexts.
func (b *Builder) Context(name string, fn func(b *Builder), opts ...domain.Option) *Builder {
	child := domain.NewContext(name, opts...)
	b.ctx.AddContext(child)
	if fn != nil {
		fn(&Builder{ctx: child})
	}
	return b
}

// Describe is an alias of Context.
func (b *Builder) Describe(name string, fn func(b *Builder), opts ...domain.Option) *Builder {
	return b.Context(name, fn, opts...)
}

// XContext declares a pending context: every example below it is reported pending.
func (b *Builder) XContext(name string, fn func(b *Builder), opts ...domain.Option) *Builder {
	return b.Context(name, fn, append(opts, domain.WithPending())...)
}

// It declares an example. A nil body declares a pending example.
func (b *Builder) It(name string, body domain.Action, opts ...domain.Option) *Builder {
	b.ctx.AddExample(domain.NewExample(name, body, opts...))
	return b
}

// ItAsync declares an example whose body is awaited.
func (b *Builder) ItAsync(name string, body domain.AsyncAction, opts ...domain.Option) *Builder {
	b.ctx.AddExample(domain.NewAsyncExample(name, body, opts...))
	return b
}

// XIt declares a pending example. The body is kept but never invoked.
func (b *Builder) XIt(name string, body domain.Action, opts ...domain.Option) *Builder {
	return b.It(name, body, append(opts, domain.WithPending())...)
}
