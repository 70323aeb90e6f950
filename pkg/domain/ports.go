package domain

// Instance is the spec object bound to a context subtree for one run.
// Instance-level hooks receive it, and it decides how tags are filtered and how
// contained failures are reported.
type Instance interface {
	// TagFilter returns the filter examples are evaluated against.
	TagFilter() TagFilter

	// ConvertError turns a contained failure into the error that is recorded.
	ConvertError(err error) error

	// SetContext is called once by Build with the root of the bound subtree.
	SetContext(c *Context)
}

// TagFilter decides whether an example takes part in a run.
type TagFilter interface {
	// ShouldSkip reports whether an example with the given inherited tags and
	// pending state must be left out of the run.
	ShouldSkip(tags Tags, pending bool) bool
}

// LiveFormatter receives results as soon as they are available.
type LiveFormatter interface {
	// WriteContext writes a context header. Called at most once per context per run,
	// parents before children, and never for the root.
	WriteContext(c *Context)

	// WriteExample writes an example that ran, with the nesting level of its context.
	WriteExample(e *Example, level int)
}

type nopFormatter struct{}

func (nopFormatter) WriteContext(*Context) {}
func (nopFormatter) WriteExample(*Example, int) {}

func filterOf(inst Instance) TagFilter {
	if inst == nil {
		return nil
	}
	return inst.TagFilter()
}

func convertErr(inst Instance, err error) error {
	if inst == nil {
		return err
	}
	return inst.ConvertError(err)
}
