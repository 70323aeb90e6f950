package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/domain"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Tags
	}{
		{name: "Empty", raw: "", want: domain.Tags{}},
		{name: "Spaces and at signs", raw: "@Fast @db", want: domain.Tags{"fast", "db"}},
		{name: "Commas", raw: "fast,slow", want: domain.Tags{"fast", "slow"}},
		{name: "Duplicates collapse", raw: "@fast, FAST  fast", want: domain.Tags{"fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseTags(tt.raw))
		})
	}
}

func TestTags_HasIsNormalized(t *testing.T) {
	tags := domain.ParseTags("db")
	assert.True(t, tags.Has("@DB"))
	assert.False(t, tags.Has("fast"))
	assert.True(t, tags.HasAny(domain.Tags{"fast", "db"}))
}

func TestNewContext_UnderscoresBecomeSpaces(t *testing.T) {
	c := domain.NewContext("when_the_user_logs_in")
	assert.Equal(t, "when the user logs in", c.Name)
}

func TestAddContext_StampsLevelParentAndTags(t *testing.T) {
	root := domain.NewContext("root", domain.WithTags("a"))
	middle := domain.NewContext("middle", domain.WithTags("b"))
	leaf := domain.NewContext("leaf", domain.WithTags("c"))

	root.AddContext(middle)
	middle.AddContext(leaf)

	assert.Equal(t, 0, root.Level)
	assert.Equal(t, 1, middle.Level)
	assert.Equal(t, 2, leaf.Level)
	assert.Same(t, middle, leaf.Parent)
	assert.Nil(t, root.Parent)

	assert.ElementsMatch(t, domain.Tags{"a", "b"}, middle.Tags)
	assert.ElementsMatch(t, domain.Tags{"a", "b", "c"}, leaf.Tags)
	assert.Equal(t, "root. middle. leaf", leaf.FullName())
}

func TestAddExample_SnapshotsTagsAndPending(t *testing.T) {
	root := domain.NewContext("A", domain.WithTags("outer"))
	pending := domain.NewContext("B", domain.WithPending())
	root.AddContext(pending)

	b1 := domain.NewExample("b1", func() {})
	pending.AddExample(b1)

	assert.Same(t, pending, b1.Context)
	assert.True(t, b1.Pending, "examples under a pending ancestor are pending")
	assert.ElementsMatch(t, domain.Tags{"outer"}, b1.Tags)
	assert.Equal(t, "A. B. b1", b1.FullName())

	// Tags added to the context after attaching are not seen by the example.
	pending.Tags.Add("late")
	assert.False(t, b1.Tags.Has("late"))

	a1 := domain.NewExample("a1", func() {})
	root.AddExample(a1)
	assert.False(t, a1.Pending)
}

func TestNewExample_NilBodyIsPending(t *testing.T) {
	assert.True(t, domain.NewExample("todo", nil).Pending)
	assert.True(t, domain.NewAsyncExample("todo", nil).Pending)
	assert.True(t, domain.NewExample("declared", func() {}, domain.WithPending()).Pending)
}

func TestContext_IsPendingFollowsAncestors(t *testing.T) {
	root := domain.NewContext("root", domain.WithPending())
	child := domain.NewContext("child")
	root.AddContext(child)

	assert.True(t, child.IsPending())
	assert.False(t, domain.NewContext("alone").IsPending())
}

func TestContext_Queries(t *testing.T) {
	root := domain.NewContext("root")
	a := domain.NewContext("a")
	b := domain.NewContext("b")
	a1 := domain.NewContext("a1")
	root.AddContext(a)
	root.AddContext(b)
	a.AddContext(a1)

	e0 := domain.NewExample("e0", func() {})
	e1 := domain.NewExample("e1", func() {})
	e2 := domain.NewExample("e2", func() {})
	root.AddExample(e0)
	a1.AddExample(e1)
	b.AddExample(e2)

	assert.Equal(t, []*domain.Example{e0, e1, e2}, root.AllExamples())
	assert.Equal(t, []*domain.Context{root, a, a1, b}, root.AllContexts())
	assert.Equal(t, []*domain.Context{a, a1, b}, root.ChildContexts())
	assert.False(t, root.HasAnyExecutedExample())

	e1.HasRun = true
	e1.Err = assert.AnError
	assert.True(t, a.HasAnyFailures())
	assert.False(t, b.HasAnyFailures())
	assert.Equal(t, []*domain.Example{e1}, root.Failures())
}

func TestExample_Status(t *testing.T) {
	e := domain.NewExample("e", func() {})
	assert.Equal(t, domain.StatusSkipped, e.Status())

	e.HasRun = true
	assert.Equal(t, domain.StatusPassed, e.Status())

	e.Err = assert.AnError
	assert.Equal(t, domain.StatusFailed, e.Status())
	assert.True(t, e.Failed())

	e.Pending = true
	assert.Equal(t, domain.StatusPending, e.Status())
	assert.False(t, e.Failed(), "pending overrides failure")
}

func TestTrimSkippedDescendants(t *testing.T) {
	root := domain.NewContext("root")
	kept := domain.NewContext("kept")
	dropped := domain.NewContext("dropped")
	root.AddContext(kept)
	root.AddContext(dropped)

	fast := domain.NewExample("fast", func() {}, domain.WithTags("fast"))
	slow := domain.NewExample("slow", func() {})
	other := domain.NewExample("other", func() {})
	kept.AddExample(fast)
	kept.AddExample(slow)
	dropped.AddExample(other)

	inst := &testInstance{filter: filterFunc(func(tags domain.Tags, _ bool) bool {
		return !tags.Has("fast")
	})}
	root.Build(inst)
	require.NoError(t, root.Run(context.Background(), nil, false, inst))

	root.TrimSkippedDescendants()

	require.Len(t, root.Contexts, 1)
	assert.Same(t, kept, root.Contexts[0])
	assert.Equal(t, []*domain.Example{fast}, kept.Examples)

	for _, c := range root.AllContexts() {
		assert.True(t, c.HasAnyExecutedExample(), c.Name)
		for _, e := range c.Examples {
			assert.True(t, e.HasRun, e.Name)
		}
	}
}
