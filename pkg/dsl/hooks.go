package dsl

import "github.com/aretw0/arbor/pkg/domain"

// Setting both the sync and async form of a hook is accepted here and reported as a
// domain.ConfigError when the context runs.

// Before sets the context-level hook run before each example.
func (b *Builder) Before(fn domain.Action) *Builder {
	b.ctx.Hooks.Before = fn
	return b
}

// BeforeAsync sets the awaitable form of Before.
func (b *Builder) BeforeAsync(fn domain.AsyncAction) *Builder {
	b.ctx.Hooks.BeforeAsync = fn
	return b
}

// Act sets the context-level hook run after the befores of each example.
func (b *Builder) Act(fn domain.Action) *Builder {
	b.ctx.Hooks.Act = fn
	return b
}

// ActAsync sets the awaitable form of Act.
func (b *Builder) ActAsync(fn domain.AsyncAction) *Builder {
	b.ctx.Hooks.ActAsync = fn
	return b
}

// After sets the context-level hook run after each example.
func (b *Builder) After(fn domain.Action) *Builder {
	b.ctx.Hooks.After = fn
	return b
}

// AfterAsync sets the awaitable form of After.
func (b *Builder) AfterAsync(fn domain.AsyncAction) *Builder {
	b.ctx.Hooks.AfterAsync = fn
	return b
}

// BeforeAll sets the hook run once before the first example of this context.
func (b *Builder) BeforeAll(fn domain.Action) *Builder {
	b.ctx.Hooks.BeforeAll = fn
	return b
}

// BeforeAllAsync sets the awaitable form of BeforeAll.
func (b *Builder) BeforeAllAsync(fn domain.AsyncAction) *Builder {
	b.ctx.Hooks.BeforeAllAsync = fn
	return b
}

// AfterAll sets the hook run once after every example and child context.
func (b *Builder) AfterAll(fn domain.Action) *Builder {
	b.ctx.Hooks.AfterAll = fn
	return b
}

// AfterAllAsync sets the awaitable form of AfterAll.
func (b *Builder) AfterAllAsync(fn domain.AsyncAction) *Builder {
	b.ctx.Hooks.AfterAllAsync = fn
	return b
}

// BeforeInstance sets the instance-level before hook.
func (b *Builder) BeforeInstance(fn domain.InstanceAction) *Builder {
	b.ctx.Hooks.BeforeInstance = fn
	return b
}

// BeforeInstanceAsync sets the awaitable instance-level before hook.
func (b *Builder) BeforeInstanceAsync(fn domain.AsyncInstanceAction) *Builder {
	b.ctx.Hooks.BeforeInstanceAsync = fn
	return b
}

// ActInstance sets the instance-level act hook.
func (b *Builder) ActInstance(fn domain.InstanceAction) *Builder {
	b.ctx.Hooks.ActInstance = fn
	return b
}

// ActInstanceAsync sets the awaitable instance-level act hook.
func (b *Builder) ActInstanceAsync(fn domain.AsyncInstanceAction) *Builder {
	b.ctx.Hooks.ActInstanceAsync = fn
	return b
}

// AfterInstance sets the instance-level after hook.
func (b *Builder) AfterInstance(fn domain.InstanceAction) *Builder {
	b.ctx.Hooks.AfterInstance = fn
	return b
}

// AfterInstanceAsync sets the awaitable instance-level after hook.
func (b *Builder) AfterInstanceAsync(fn domain.AsyncInstanceAction) *Builder {
	b.ctx.Hooks.AfterInstanceAsync = fn
	return b
}

// BeforeAllInstance sets the instance-level beforeAll hook.
func (b *Builder) BeforeAllInstance(fn domain.InstanceAction) *Builder {
	b.ctx.Hooks.BeforeAllInstance = fn
	return b
}

// BeforeAllInstanceAsync sets the awaitable instance-level beforeAll hook.
func (b *Builder) BeforeAllInstanceAsync(fn domain.AsyncInstanceAction) *Builder {
	b.ctx.Hooks.BeforeAllInstanceAsync = fn
	return b
}

// AfterAllInstance sets the instance-level afterAll hook.
func (b *Builder) AfterAllInstance(fn domain.InstanceAction) *Builder {
	b.ctx.Hooks.AfterAllInstance = fn
	return b
}

// AfterAllInstanceAsync sets the awaitable instance-level afterAll hook.
func (b *Builder) AfterAllInstanceAsync(fn domain.AsyncInstanceAction) *Builder {
	b.ctx.Hooks.AfterAllInstanceAsync = fn
	return b
}
