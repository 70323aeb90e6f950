package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Action is a synchronous context-level hook or example body. It fails by panicking.
type Action func()

// AsyncAction is an awaitable context-level hook or example body.
type AsyncAction func(ctx context.Context) error

// InstanceAction is a synchronous instance-level hook.
type InstanceAction func(inst Instance)

// AsyncInstanceAction is an awaitable instance-level hook.
type AsyncInstanceAction func(ctx context.Context, inst Instance) error

// HookScope tells context-level hooks apart from instance-level hooks.
type HookScope string

const (
	ScopeContext  HookScope = "context"
	ScopeInstance HookScope = "instance"
)

// Phase identifies one of the five hook phases.
type Phase int

const (
	PhaseBefore Phase = iota
	PhaseAct
	PhaseAfter
	PhaseBeforeAll
	PhaseAfterAll
)

var phaseNames = [...]string{"before", "act", "after", "beforeAll", "afterAll"}

func (p Phase) String() string {
	if int(p) < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Hooks holds the optional hook slots of a context. Within one scope and phase at most
// one of the sync and async forms may be set.
type Hooks struct {
	Before, Act, After, BeforeAll, AfterAll Action

	BeforeAsync, ActAsync, AfterAsync, BeforeAllAsync, AfterAllAsync AsyncAction

	BeforeInstance, ActInstance, AfterInstance, BeforeAllInstance, AfterAllInstance InstanceAction

	BeforeInstanceAsync, ActInstanceAsync, AfterInstanceAsync, BeforeAllInstanceAsync, AfterAllInstanceAsync AsyncInstanceAction
}

type hookSlots struct {
	sync      Action
	async     AsyncAction
	inst      InstanceAction
	instAsync AsyncInstanceAction
}

func (h *Hooks) slots(p Phase) hookSlots {
	switch p {
	case PhaseBefore:
		return hookSlots{h.Before, h.BeforeAsync, h.BeforeInstance, h.BeforeInstanceAsync}
	case PhaseAct:
		return hookSlots{h.Act, h.ActAsync, h.ActInstance, h.ActInstanceAsync}
	case PhaseAfter:
		return hookSlots{h.After, h.AfterAsync, h.AfterInstance, h.AfterInstanceAsync}
	case PhaseBeforeAll:
		return hookSlots{h.BeforeAll, h.BeforeAllAsync, h.BeforeAllInstance, h.BeforeAllInstanceAsync}
	case PhaseAfterAll:
		return hookSlots{h.AfterAll, h.AfterAllAsync, h.AfterAllInstance, h.AfterAllInstanceAsync}
	}
	return hookSlots{}
}

// Declared returns the phases that have at least one hook set, in phase order.
func (h *Hooks) Declared() []Phase {
	var phases []Phase
	for p := PhaseBefore; p <= PhaseAfterAll; p++ {
		s := h.slots(p)
		if s.sync != nil || s.async != nil || s.inst != nil || s.instAsync != nil {
			phases = append(phases, p)
		}
	}
	return phases
}

// checkPhase validates both scopes of one phase on this context only.
func (c *Context) checkPhase(p Phase) error {
	s := c.Hooks.slots(p)
	if s.inst != nil && s.instAsync != nil {
		return &ConfigError{Context: c.FullName(), Scope: ScopeInstance, Phase: p}
	}
	if s.sync != nil && s.async != nil {
		return &ConfigError{Context: c.FullName(), Scope: ScopeContext, Phase: p}
	}
	return nil
}

// checkChain validates one phase on this context and every ancestor.
func (c *Context) checkChain(p Phase) error {
	for node := c; node != nil; node = node.Parent {
		if err := node.checkPhase(p); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every phase of this context for conflicting hook pairs.
func (c *Context) Validate() error {
	for p := PhaseBefore; p <= PhaseAfterAll; p++ {
		if err := c.checkPhase(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) runInstanceHook(ctx context.Context, inst Instance, p Phase) error {
	s := c.Hooks.slots(p)
	switch {
	case s.inst != nil:
		return invoke(p.String(), func() { s.inst(inst) })
	case s.instAsync != nil:
		return await(ctx, p.String(), func(ctx context.Context) error { return s.instAsync(ctx, inst) })
	}
	return nil
}

func (c *Context) runContextHook(ctx context.Context, p Phase) error {
	s := c.Hooks.slots(p)
	switch {
	case s.sync != nil:
		return invoke(p.String(), s.sync)
	case s.async != nil:
		return await(ctx, p.String(), s.async)
	}
	return nil
}

// RunBefores runs the before hooks of every ancestor, outermost first, then the
// instance-level and context-level before hooks of this context.
func (c *Context) RunBefores(ctx context.Context, inst Instance) error {
	if err := c.checkChain(PhaseBefore); err != nil {
		return err
	}
	return c.runBefores(ctx, inst, PhaseBefore)
}

// RunActs runs the act hooks in the same order as RunBefores.
func (c *Context) RunActs(ctx context.Context, inst Instance) error {
	if err := c.checkChain(PhaseAct); err != nil {
		return err
	}
	return c.runBefores(ctx, inst, PhaseAct)
}

func (c *Context) runBefores(ctx context.Context, inst Instance, p Phase) error {
	if c.Parent != nil {
		if err := c.Parent.runBefores(ctx, inst, p); err != nil {
			return err
		}
	}
	if err := c.runInstanceHook(ctx, inst, p); err != nil {
		return err
	}
	return c.runContextHook(ctx, p)
}

// RunAfters runs the instance-level and context-level after hooks of this context,
// then those of every ancestor, outermost last.
func (c *Context) RunAfters(ctx context.Context, inst Instance) error {
	if err := c.checkChain(PhaseAfter); err != nil {
		return err
	}
	return c.runAfters(ctx, inst)
}

func (c *Context) runAfters(ctx context.Context, inst Instance) error {
	if err := c.runInstanceHook(ctx, inst, PhaseAfter); err != nil {
		return err
	}
	if err := c.runContextHook(ctx, PhaseAfter); err != nil {
		return err
	}
	if c.Parent != nil {
		return c.Parent.runAfters(ctx, inst)
	}
	return nil
}

// RunBeforeAll runs the beforeAll hooks of this context only: context level first.
func (c *Context) RunBeforeAll(ctx context.Context, inst Instance) error {
	return c.runOnce(ctx, inst, PhaseBeforeAll)
}

// RunAfterAll runs the afterAll hooks of this context only: context level first.
func (c *Context) RunAfterAll(ctx context.Context, inst Instance) error {
	return c.runOnce(ctx, inst, PhaseAfterAll)
}

func (c *Context) runOnce(ctx context.Context, inst Instance, p Phase) error {
	if err := c.checkPhase(p); err != nil {
		return err
	}
	if err := c.runContextHook(ctx, p); err != nil {
		return err
	}
	return c.runInstanceHook(ctx, inst, p)
}

// invoke runs a synchronous hook and blocks until it returns. A panic or a
// runtime.Goexit inside the hook becomes an InvocationError.
func invoke(hook string, fn func()) error {
	done := make(chan error, 1)
	go func() {
		completed := false
		defer func() {
			switch r := recover(); {
			case r != nil:
				done <- &InvocationError{Hook: hook, Err: panicToError(r)}
			case !completed:
				done <- &InvocationError{Hook: hook, Err: ErrGoexit}
			default:
				done <- nil
			}
		}()
		fn()
		completed = true
	}()
	return <-done
}

// await runs an async hook on its own goroutine and blocks until it settles.
func await(ctx context.Context, hook string, fn func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	// Written before the group is released, so it is visible after Wait.
	var exitErr error
	g.Go(func() (err error) {
		completed := false
		defer func() {
			if r := recover(); r != nil {
				err = panicToError(r)
			} else if !completed {
				exitErr = ErrGoexit
			}
		}()
		err = fn(gctx)
		completed = true
		return err
	})

	err := g.Wait()
	if err == nil {
		err = exitErr
	}
	if err != nil {
		return &InvocationError{Hook: hook, Err: err}
	}
	return nil
}
