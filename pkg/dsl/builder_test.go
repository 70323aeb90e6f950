package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
)

func TestBuilder_DeclaresTree(t *testing.T) {
	root := dsl.Describe("account", func(b *dsl.Builder) {
		b.It("opens", func() {})
		b.Context("when_withdrawing", func(b *dsl.Builder) {
			b.It("reduces the balance", func() {}, domain.WithTags("fast"))
			b.Describe("beyond the limit", func(b *dsl.Builder) {
				b.It("refuses", func() {})
			})
		}, domain.WithTags("money"))
		b.XContext("statements", func(b *dsl.Builder) {
			b.It("lists movements", func() {})
		})
		b.XIt("supports overdrafts", func() {})
		b.It("closes", nil)
	}, domain.WithTags("bank"))

	require.Len(t, root.Contexts, 2)
	withdrawing := root.Contexts[0]
	assert.Equal(t, "when withdrawing", withdrawing.Name)
	assert.Equal(t, 1, withdrawing.Level)
	assert.ElementsMatch(t, domain.Tags{"money", "bank"}, withdrawing.Tags)

	reduces := withdrawing.Examples[0]
	assert.ElementsMatch(t, domain.Tags{"fast", "money", "bank"}, reduces.Tags)

	limit := withdrawing.Contexts[0]
	assert.Equal(t, 2, limit.Level)
	assert.ElementsMatch(t, domain.Tags{"money", "bank"}, limit.Examples[0].Tags)

	statements := root.Contexts[1]
	assert.True(t, statements.Examples[0].Pending, "examples under XContext are pending")

	require.Len(t, root.Examples, 3)
	assert.False(t, root.Examples[0].Pending)
	assert.True(t, root.Examples[1].Pending)
	assert.True(t, root.Examples[2].Pending, "nil body is pending")
}

func TestBuilder_HooksRunInNestingOrder(t *testing.T) {
	var got []string
	log := func(name string) domain.Action {
		return func() { got = append(got, name) }
	}

	root := dsl.Describe("outer", func(b *dsl.Builder) {
		b.BeforeAll(log("outer.beforeAll")).
			Before(log("outer.before")).
			After(log("outer.after")).
			AfterAll(log("outer.afterAll"))

		b.Context("inner", func(b *dsl.Builder) {
			b.BeforeInstance(func(domain.Instance) { got = append(got, "inner.beforeInstance") }).
				ActAsync(func(context.Context) error {
					got = append(got, "inner.act")
					return nil
				}).
				AfterInstanceAsync(func(context.Context, domain.Instance) error {
					got = append(got, "inner.afterInstance")
					return nil
				})
			b.ItAsync("works", func(context.Context) error {
				got = append(got, "works")
				return nil
			})
		})
	})

	require.NoError(t, root.Run(context.Background(), nil, false, nil))

	assert.Equal(t, []string{
		"outer.beforeAll",
		"outer.before", "inner.beforeInstance",
		"inner.act",
		"works",
		"inner.afterInstance", "outer.after",
		"outer.afterAll",
	}, got)
}

func TestBuilder_ConflictSurfacesAtRun(t *testing.T) {
	root := dsl.Describe("broken", func(b *dsl.Builder) {
		b.Before(func() {}).BeforeAsync(func(context.Context) error { return nil })
		b.It("never runs", func() {})
	})

	err := root.Run(context.Background(), nil, false, nil)
	assert.ErrorIs(t, err, domain.ErrConflictingHooks)
}

func TestFor_ExtendsExistingContext(t *testing.T) {
	c := domain.NewContext("existing", domain.WithTags("tagged"))
	dsl.For(c).It("added later", func() {})

	require.Len(t, c.Examples, 1)
	assert.True(t, c.Examples[0].Tags.Has("tagged"))
	assert.Same(t, c, dsl.For(c).Node())
}
