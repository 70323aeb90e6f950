package domain

import (
	"errors"
	"fmt"
)

// ErrConflictingHooks is matched by every ConfigError.
var ErrConflictingHooks = errors.New("conflicting sync and async hooks")

// ErrGoexit is recorded when a hook or body ends its goroutine through runtime.Goexit,
// as t.FailNow does, instead of returning or panicking.
var ErrGoexit = errors.New("exited via runtime.Goexit")

// ConfigError is returned when a scope declares both the sync and the async form of
// the same hook. It indicates a broken spec definition and is never contained.
type ConfigError struct {
	Context string
	Scope   HookScope
	Phase   Phase
}

func (e *ConfigError) Error() string {
	if e.Scope == ScopeInstance {
		return fmt.Sprintf("context %q cannot have both a sync and an async instance-level '%s' set, please pick one of the two", e.Context, e.Phase)
	}
	return fmt.Sprintf("context %q cannot have both a '%s' and a '%sAsync' set, please pick one of the two", e.Context, e.Phase, e.Phase)
}

func (e *ConfigError) Unwrap() error {
	return ErrConflictingHooks
}

// InvocationError wraps a failure raised while invoking a hook or an example body.
// Containment unwraps it exactly one level before recording the failure.
type InvocationError struct {
	Hook string
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Hook, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ContextFailureError is recorded on an example whose own body succeeded but whose
// surrounding before, act or after hooks failed.
type ContextFailureError struct {
	Err error
}

func (e *ContextFailureError) Error() string {
	return "context failure: " + e.Err.Error()
}

func (e *ContextFailureError) Unwrap() error {
	return e.Err
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
