/*
Package dsl provides a fluent builder for declaring Arbor specification trees in Go.

Contexts are attached to their parent before their body runs, so tags and the pending
state of every enclosing context are final when examples are declared below them.

Example usage:

	root := dsl.Describe("account", func(b *dsl.Builder) {
		var balance int

		b.Before(func() { balance = 100 })

		b.Context("when withdrawing", func(b *dsl.Builder) {
			b.Act(func() { balance -= 30 })
			b.It("reduces the balance", func() {
				if balance != 70 {
					panic(fmt.Sprintf("balance = %d", balance))
				}
			})
		}, domain.WithTags("money"))

		b.XIt("supports overdrafts", nil)
	})
*/
package dsl
