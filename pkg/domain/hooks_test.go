package domain_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aretw0/arbor/pkg/domain"
)

func TestRun_HookOrderAcrossThreeLevels(t *testing.T) {
	var got trace

	root := domain.NewContext("root")
	middle := domain.NewContext("middle")
	leaf := domain.NewContext("leaf")
	root.AddContext(middle)
	middle.AddContext(leaf)

	root.Hooks.BeforeAll = got.hook("root.beforeAll")
	root.Hooks.BeforeAllInstance = got.instanceHook("root.beforeAllInstance")
	root.Hooks.BeforeInstance = got.instanceHook("root.beforeInstance")
	root.Hooks.Before = got.hook("root.before")
	root.Hooks.Act = got.hook("root.act")
	root.Hooks.AfterInstance = got.instanceHook("root.afterInstance")
	root.Hooks.After = got.hook("root.after")
	root.Hooks.AfterAll = got.hook("root.afterAll")
	root.Hooks.AfterAllInstance = got.instanceHook("root.afterAllInstance")

	middle.Hooks.Before = got.hook("middle.before")
	middle.Hooks.After = got.hook("middle.after")

	leaf.Hooks.Before = got.hook("leaf.before")
	leaf.Hooks.Act = got.hook("leaf.act")
	leaf.Hooks.After = got.hook("leaf.after")
	leaf.AddExample(domain.NewExample("it", got.hook("it")))

	inst := &testInstance{}
	root.Build(inst)
	require.NoError(t, root.Run(context.Background(), nil, false, inst))

	want := trace{
		"root.beforeAll", "root.beforeAllInstance",
		"root.beforeInstance", "root.before", "middle.before", "leaf.before",
		"root.act", "leaf.act",
		"it",
		"leaf.after", "middle.after", "root.afterInstance", "root.after",
		"root.afterAll", "root.afterAllInstance",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_InstanceHooksReceiveBoundInstance(t *testing.T) {
	root := domain.NewContext("root")
	child := domain.NewContext("child")
	root.AddContext(child)

	var seen []domain.Instance
	child.Hooks.BeforeInstance = func(inst domain.Instance) { seen = append(seen, inst) }
	child.Hooks.ActInstanceAsync = func(_ context.Context, inst domain.Instance) error {
		seen = append(seen, inst)
		return nil
	}
	child.AddExample(domain.NewExample("it", func() {}))

	inst := &testInstance{}
	root.Build(inst)

	// The instance bound by Build wins over the one passed to Run.
	require.NoError(t, root.Run(context.Background(), nil, false, &testInstance{}))

	require.Len(t, seen, 2)
	assert.Same(t, inst, seen[0])
	assert.Same(t, inst, seen[1])
	assert.Same(t, root, inst.bound)
	assert.Same(t, inst, child.GetInstance())
}

func TestRun_ConflictingHooksAreConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		set   func(h *domain.Hooks, tr *trace)
		scope domain.HookScope
		phase domain.Phase
	}{
		{
			name: "Before and BeforeAsync",
			set: func(h *domain.Hooks, tr *trace) {
				h.Before = tr.hook("before")
				h.BeforeAsync = func(context.Context) error { return nil }
			},
			scope: domain.ScopeContext,
			phase: domain.PhaseBefore,
		},
		{
			name: "Instance After pair",
			set: func(h *domain.Hooks, tr *trace) {
				h.AfterInstance = tr.instanceHook("after")
				h.AfterInstanceAsync = func(context.Context, domain.Instance) error { return nil }
			},
			scope: domain.ScopeInstance,
			phase: domain.PhaseAfter,
		},
		{
			name: "AfterAll pair",
			set: func(h *domain.Hooks, tr *trace) {
				h.AfterAll = tr.hook("afterAll")
				h.AfterAllAsync = func(context.Context) error { return nil }
			},
			scope: domain.ScopeContext,
			phase: domain.PhaseAfterAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got trace
			c := domain.NewContext("broken")
			c.Hooks.BeforeAll = got.hook("beforeAll")
			tt.set(&c.Hooks, &got)
			ex := domain.NewExample("it", got.hook("it"))
			c.AddExample(ex)

			err := c.Run(context.Background(), nil, false, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConflictingHooks)
			var cfgErr *domain.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.scope, cfgErr.Scope)
			assert.Equal(t, tt.phase, cfgErr.Phase)
			assert.Contains(t, err.Error(), "please pick one of the two")

			assert.Empty(t, got, "no hook may run before the configuration error")
			assert.False(t, ex.HasRun)
		})
	}
}

func TestRunBefores_ValidatesWholeChainFirst(t *testing.T) {
	var got trace
	root := domain.NewContext("root")
	leaf := domain.NewContext("leaf")
	root.AddContext(leaf)
	root.Hooks.Before = got.hook("root.before")
	leaf.Hooks.Before = got.hook("leaf.before")
	leaf.Hooks.BeforeAsync = func(context.Context) error { return nil }

	err := leaf.RunBefores(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrConflictingHooks)
	assert.Empty(t, got)
}

func TestRun_ConfigErrorInNestedContextAbortsRun(t *testing.T) {
	root := domain.NewContext("root")
	child := domain.NewContext("child")
	sibling := domain.NewContext("sibling")
	root.AddContext(child)
	root.AddContext(sibling)

	child.Hooks.Act = func() {}
	child.Hooks.ActAsync = func(context.Context) error { return nil }
	child.AddExample(domain.NewExample("c1", func() {}))
	s1 := domain.NewExample("s1", func() {})
	sibling.AddExample(s1)

	err := root.Run(context.Background(), nil, false, nil)

	assert.ErrorIs(t, err, domain.ErrConflictingHooks)
	assert.False(t, s1.HasRun, "the traversal stops at the configuration error")
}

func TestRun_AsyncHooksAreAwaited(t *testing.T) {
	defer goleak.VerifyNone(t)

	var got trace
	c := domain.NewContext("async")
	c.Hooks.BeforeAllAsync = func(ctx context.Context) error {
		time.Sleep(5 * time.Millisecond)
		got = append(got, "beforeAll")
		return nil
	}
	c.Hooks.BeforeAsync = func(ctx context.Context) error {
		select {
		case <-time.After(5 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
		got = append(got, "before")
		return nil
	}
	c.Hooks.AfterInstanceAsync = func(context.Context, domain.Instance) error {
		got = append(got, "afterInstance")
		return nil
	}
	c.AddExample(domain.NewAsyncExample("it", func(context.Context) error {
		got = append(got, "it")
		return nil
	}))

	require.NoError(t, c.Run(context.Background(), nil, false, nil))

	want := trace{"beforeAll", "before", "it", "afterInstance"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("async order mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_AsyncFailuresAreContained(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	c := domain.NewContext("async")
	c.Hooks.AfterAsync = func(context.Context) error { return boom }
	c.Hooks.ActAsync = func(context.Context) error { panic("kaboom") }
	passing := domain.NewExample("passing", func() {})
	failing := domain.NewAsyncExample("failing", func(context.Context) error { return boom })
	c.AddExample(passing)
	c.AddExample(failing)

	require.NoError(t, c.Run(context.Background(), nil, false, nil))

	// The act panic is the first phase failure and wins over the after error.
	var ctxErr *domain.ContextFailureError
	require.ErrorAs(t, passing.Err, &ctxErr)
	var panicErr *domain.PanicError
	require.ErrorAs(t, ctxErr.Err, &panicErr)
	assert.Equal(t, "kaboom", panicErr.Value)

	// The body's own failure is kept over the phase failures.
	assert.Equal(t, boom, failing.Err)
}

func TestRun_GoexitIsRecordedAsFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name  string
		setup func(c *domain.Context) *domain.Example
		phase bool
	}{
		{
			name: "AsyncHook",
			setup: func(c *domain.Context) *domain.Example {
				c.Hooks.BeforeAsync = func(context.Context) error {
					runtime.Goexit()
					return nil
				}
				return domain.NewExample("it", func() {})
			},
			phase: true,
		},
		{
			name: "SyncHook",
			setup: func(c *domain.Context) *domain.Example {
				c.Hooks.After = func() { runtime.Goexit() }
				return domain.NewExample("it", func() {})
			},
			phase: true,
		},
		{
			name: "AsyncBody",
			setup: func(*domain.Context) *domain.Example {
				return domain.NewAsyncExample("it", func(context.Context) error {
					runtime.Goexit()
					return nil
				})
			},
		},
		{
			name: "SyncBody",
			setup: func(*domain.Context) *domain.Example {
				return domain.NewExample("it", func() { runtime.Goexit() })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.NewContext("goexit")
			e := tt.setup(c)
			sibling := domain.NewExample("sibling", func() {})
			c.AddExample(e)
			c.AddExample(sibling)

			require.NoError(t, c.Run(context.Background(), nil, false, nil))

			assert.Equal(t, domain.StatusFailed, e.Status())
			assert.ErrorIs(t, e.Err, domain.ErrGoexit)
			if tt.phase {
				var ctxErr *domain.ContextFailureError
				assert.ErrorAs(t, e.Err, &ctxErr)
			}
			assert.True(t, sibling.HasRun)
		})
	}
}
