package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

const (
	colorPassed  = "#22c55e"
	colorFailed  = "#ef4444"
	colorPending = "#eab308"
	colorMuted   = "#9ca3af"
)

// Console writes indented results to a terminal.
type Console struct {
	w       io.Writer
	profile termenv.Profile
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithColor forces colour on or off regardless of the output.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		if enabled {
			c.profile = termenv.EnvColorProfile()
		} else {
			c.profile = termenv.Ascii
		}
	}
}

// NewConsole creates a console formatter writing to w.
// Colour is enabled only when w is a terminal.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w, profile: termenv.Ascii}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.profile = termenv.EnvColorProfile()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) paint(s, hex string) termenv.Style {
	return c.profile.String(s).Foreground(c.profile.Color(hex))
}

func indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat("  ", level)
}

// WriteContext prints the context name as a header.
func (c *Console) WriteContext(ctx *domain.Context) {
	fmt.Fprintf(c.w, "%s%s\n", indent(ctx.Level-1), c.profile.String(ctx.Name).Bold())
}

// WriteExample prints one example line.
func (c *Console) WriteExample(e *domain.Example, level int) {
	prefix := indent(level)
	switch e.Status() {
	case domain.StatusFailed:
		fmt.Fprintf(c.w, "%s%s\n", prefix, c.paint(e.Name+" - FAILED - "+firstLine(e.Err), colorFailed))
	case domain.StatusPending:
		fmt.Fprintf(c.w, "%s%s\n", prefix, c.paint(e.Name+" - PENDING", colorPending))
	default:
		fmt.Fprintf(c.w, "%s%s %s\n", prefix, c.paint(e.Name, colorPassed),
			c.paint(fmt.Sprintf("(%s)", formatDuration(e.Duration)), colorMuted))
	}
}

// WriteSummary lists failures and prints the totals line.
func (c *Console) WriteSummary(r *runner.Report) error {
	fmt.Fprintln(c.w)

	if len(r.Failures) > 0 || len(r.ContextFailures) > 0 {
		fmt.Fprintln(c.w, c.paint("**** FAILURES ****", colorFailed).Bold())
		n := 1
		for _, e := range r.Failures {
			fmt.Fprintf(c.w, "\n%d) %s\n", n, e.FullName())
			fmt.Fprintf(c.w, "%s\n", c.paint(indentLines(e.Err.Error(), "   "), colorFailed))
			n++
		}
		for _, ctx := range r.ContextFailures {
			fmt.Fprintf(c.w, "\n%d) %s (context)\n", n, ctx.FullName())
			fmt.Fprintf(c.w, "%s\n", c.paint(indentLines(ctx.Err.Error(), "   "), colorFailed))
			n++
		}
		fmt.Fprintln(c.w)
	}

	totals := fmt.Sprintf("%d Examples, %d Failed, %d Pending", r.Total, r.Failed, r.Pending)
	hex := colorPassed
	switch {
	case !r.Success():
		hex = colorFailed
	case r.Pending > 0:
		hex = colorPending
	}
	fmt.Fprintln(c.w, c.paint(totals, hex))
	_, err := fmt.Fprintln(c.w, c.paint(fmt.Sprintf("Run %s finished in %s", r.RunID, formatDuration(r.Duration)), colorMuted))
	return err
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func firstLine(err error) string {
	if err == nil {
		return ""
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

func indentLines(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
