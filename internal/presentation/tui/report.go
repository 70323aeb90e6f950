package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

var statusMarks = map[domain.Status]string{
	domain.StatusPassed:  "✅",
	domain.StatusFailed:  "❌",
	domain.StatusPending: "⏸️",
}

// ReportMarkdown renders a finished run as a markdown document: one section per
// context with its examples, then the failure details.
func ReportMarkdown(r *runner.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Root.Name)
	fmt.Fprintf(&sb, "**%d examples**, %d failed, %d pending in %s\n\n",
		r.Total, r.Failed, r.Pending, r.Duration.Round(time.Microsecond))

	writeContext(&sb, r.Root)

	if len(r.Failures) > 0 || len(r.ContextFailures) > 0 {
		sb.WriteString("## Failures\n\n")
		for i, e := range r.Failures {
			fmt.Fprintf(&sb, "%d. **%s**\n\n", i+1, e.FullName())
			fmt.Fprintf(&sb, "```\n%s\n```\n\n", strings.TrimRight(e.Err.Error(), "\n"))
		}
		for _, c := range r.ContextFailures {
			fmt.Fprintf(&sb, "- context **%s**: `%s`\n", c.FullName(), firstLine(c.Err.Error()))
		}
	}
	return sb.String()
}

func writeContext(sb *strings.Builder, c *domain.Context) {
	var lines []string
	for _, e := range c.Examples {
		mark, ok := statusMarks[e.Status()]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s %s", mark, e.Name))
	}

	if c.Parent != nil && len(lines) > 0 {
		depth := min(c.Level+1, 6)
		fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", depth), c.FullName())
	}
	if len(lines) > 0 {
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n\n")
	}

	for _, child := range c.Contexts {
		writeContext(sb, child)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
