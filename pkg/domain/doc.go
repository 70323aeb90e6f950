/*
Package domain contains the execution core of the Arbor specification runner.

It models a specification as a tree of Contexts (the "describe" scopes) that own
Examples (the "it" leaves) and optional hooks. The package is kept free of I/O,
logging and persistence: results are streamed to a LiveFormatter supplied by the
caller, and the spec Instance bound to a tree decides how tags are filtered and how
failures are reported.

# Key Entities

  - Context: a node in the tree. Owns child contexts, examples and hook slots.
  - Example: a leaf unit of work with a captured outcome (passed, failed or pending).
  - Hooks: before/act/after and beforeAll/afterAll slots, at context level or
    instance level, each in a sync or async form.
  - Tags: normalized labels inherited from parent to child at attach time.

# Execution

Run walks the tree depth-first. For every example it runs the ancestor before hooks
outermost first, then the act hooks, the example body and finally the after hooks
innermost first. Failures raised by hooks and bodies are contained and recorded on
the nearest scope; only configuration errors (a scope declaring both the sync and
the async form of a hook) escape Run.
*/
package domain
