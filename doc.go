/*
Package arbor is the execution engine of a behaviour specification ("describe/it") runner.

It organizes nested contexts into a tree, runs before/act/after hooks in nesting
order at each level, executes the leaf examples, and isolates failures so that one
failing hook or example never corrupts the results of its siblings.

# Concept

A specification is a tree of contexts. Each context may declare hooks for five
phases (before, act, after, beforeAll, afterAll), each either synchronous or
asynchronous, at context level or at instance level. Examples are the leaves.

For every example the hooks of all ancestors run first (before, then act), then the
example body, then the after hooks from the innermost context outwards. BeforeAll
and afterAll run once per context, around its examples and children.

Failures are contained: a panicking hook is recorded on the example as a
ContextFailureError, and the example's own failure always wins. Declaring both the
sync and async form of one hook is a configuration error that aborts the run.

# Usage

	root := dsl.Describe("stack", func(b *dsl.Builder) {
		var s []int
		b.Before(func() { s = nil })
		b.Context("push", func(b *dsl.Builder) {
			b.Act(func() { s = append(s, 1) })
			b.It("grows", func() {
				if len(s) != 1 {
					panic("expected one element")
				}
			})
		})
	})

	report, err := arbor.Run(ctx, root, runner.WithFormatter(formatter.NewConsole(os.Stdout)))

A binary that only runs one specification can hand over to the command line:

	func main() {
		arbor.Main("stack", declareStack)
	}
*/
package arbor
