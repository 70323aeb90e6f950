/*
Package suite provides Suite, the default spec instance bound to a context tree.

Instance-level hooks receive the Suite, so it is the place to keep state shared
across nested contexts. Example bodies can assert with testify through T:

	b.It("adds", func() {
		require.Equal(s.T(), 4, 2+2)
	})
*/
package suite
