package domain

import (
	"context"
	"slices"
)

// Build binds inst to this context and every descendant for the next run.
func (c *Context) Build(inst Instance) {
	if inst != nil {
		inst.SetContext(c)
	}
	c.bind(inst)
}

func (c *Context) bind(inst Instance) {
	c.instance = inst
	for _, child := range c.Contexts {
		child.bind(inst)
	}
}

// Run executes this subtree depth-first, streaming results to f.
//
// Failures raised by hooks and examples are recorded, never returned. The only errors
// returned are configuration errors, which abort the whole traversal. With failFast set,
// the traversal stops as soon as a failed example is visible from the current scope.
func (c *Context) Run(ctx context.Context, f LiveFormatter, failFast bool, inst Instance) error {
	if failFast && c.Parent != nil && c.Parent.HasAnyFailures() {
		return nil
	}
	if f == nil {
		f = nopFormatter{}
	}
	if c.instance != nil {
		inst = c.instance
	}

	filter := filterOf(inst)
	shouldRun := slices.ContainsFunc(c.AllExamples(), func(e *Example) bool { return e.ShouldNotSkip(filter) })

	if shouldRun {
		if err := c.Validate(); err != nil {
			return err
		}
		if err := guard(ctx, inst, &c.Err, c.RunBeforeAll); err != nil {
			return err
		}
	}

	// Examples may be appended while iterating, so the length is re-read every step.
	for i := 0; i < len(c.Examples); i++ {
		e := c.Examples[i]
		if failFast && c.HasAnyFailures() {
			return nil
		}

		if err := c.Exercise(ctx, e, inst); err != nil {
			return err
		}
		if !e.HasRun {
			continue
		}

		if !c.written {
			c.writeAncestors(f)
			c.written = true
		}
		f.WriteExample(e, c.Level)
	}

	for i := 0; i < len(c.Contexts); i++ {
		if err := c.Contexts[i].Run(ctx, f, failFast, inst); err != nil {
			return err
		}
	}

	if shouldRun {
		if err := guard(ctx, inst, &c.Err, c.RunAfterAll); err != nil {
			return err
		}
	}
	return nil
}

// Exercise runs one example with its surrounding before, act and after hooks.
// Examples excluded by the tag filter are left untouched.
func (c *Context) Exercise(ctx context.Context, e *Example, inst Instance) error {
	if e.ShouldSkip(filterOf(inst)) {
		return nil
	}

	var phaseErr error
	if err := guard(ctx, inst, &phaseErr, c.RunBefores); err != nil {
		return err
	}
	if err := guard(ctx, inst, &phaseErr, c.RunActs); err != nil {
		return err
	}
	if err := guard(ctx, inst, &e.Err, e.Run); err != nil {
		return err
	}
	if err := guard(ctx, inst, &phaseErr, c.RunAfters); err != nil {
		return err
	}

	e.assignContextErr(phaseErr)
	return nil
}

// guard runs fn and records its failure in slot unless the slot is already set.
// Configuration errors are returned instead of recorded.
func guard(ctx context.Context, inst Instance, slot *error, fn func(context.Context, Instance) error) error {
	err := fn(ctx, inst)
	if err == nil {
		return nil
	}

	// Only a ConfigError raised by phase validation aborts. One wrapped by a hook or
	// body is an ordinary failure.
	if _, ok := err.(*ConfigError); ok {
		return err
	}

	if *slot == nil {
		*slot = convertErr(inst, unwrapInvocation(err))
	}
	return nil
}

func unwrapInvocation(err error) error {
	if inv, ok := err.(*InvocationError); ok && inv.Err != nil {
		return inv.Err
	}
	return err
}

// writeAncestors writes every not yet written header from the root down to c.
// The root itself is never written.
func (c *Context) writeAncestors(f LiveFormatter) {
	if c.Parent == nil {
		return
	}
	c.Parent.writeAncestors(f)
	if !c.written {
		f.WriteContext(c)
	}
	c.written = true
}
