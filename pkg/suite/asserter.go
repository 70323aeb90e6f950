package suite

import "fmt"

// AssertionError is raised by the Asserter when an assertion fails.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Asserter adapts testify assertions to example bodies. A failed assertion panics
// with an *AssertionError, which the runner records on the current example.
type Asserter struct{}

// Errorf implements assert.TestingT.
func (a *Asserter) Errorf(format string, args ...any) {
	panic(&AssertionError{Message: fmt.Sprintf(format, args...)})
}

// FailNow implements require.TestingT.
func (a *Asserter) FailNow() {
	panic(&AssertionError{Message: "assertion failed"})
}

// Helper is a no-op so helpers written for *testing.T keep compiling.
func (a *Asserter) Helper() {}
