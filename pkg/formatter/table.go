package formatter

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

type tally struct {
	passed, failed, pending int
}

func (t *tally) add(e *domain.Example) {
	switch e.Status() {
	case domain.StatusPassed:
		t.passed++
	case domain.StatusFailed:
		t.failed++
	case domain.StatusPending:
		t.pending++
	}
}

func (t tally) status() string {
	switch {
	case t.failed > 0:
		return "FAIL"
	case t.passed == 0 && t.pending > 0:
		return "PENDING"
	default:
		return "PASS"
	}
}

// SummaryTable renders one row per top-level context of the report, plus the
// examples declared directly on the root. colored switches to a status coloured style.
func SummaryTable(w io.Writer, r *runner.Report, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s (%s)", r.Root.Name, formatDuration(r.Duration)))
	t.AppendHeader(table.Row{"Context", "Passed", "Failed", "Pending", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Context", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Pending", Align: text.AlignRight},
	})

	var own tally
	for _, e := range r.Root.Examples {
		own.add(e)
	}
	if own != (tally{}) {
		t.AppendRow(table.Row{r.Root.Name, own.passed, own.failed, own.pending, own.status()})
	}

	for _, c := range r.Root.Contexts {
		var ct tally
		for _, e := range c.AllExamples() {
			ct.add(e)
		}
		if ct == (tally{}) {
			continue
		}
		status := ct.status()
		if slices.ContainsFunc(c.AllContexts(), func(d *domain.Context) bool { return d.Err != nil }) {
			status = "FAIL"
		}
		t.AppendRow(table.Row{c.Name, ct.passed, ct.failed, ct.pending, status})
	}

	result := "PASS"
	if !r.Success() {
		result = "FAIL"
	}
	t.AppendFooter(table.Row{"TOTAL", r.Passed, r.Failed, r.Pending, result})

	if colored {
		switch {
		case !r.Success():
			t.SetStyle(table.StyleColoredBlackOnRedWhite)
		case r.Pending > 0:
			t.SetStyle(table.StyleColoredBlackOnYellowWhite)
		default:
			t.SetStyle(table.StyleColoredBlackOnGreenWhite)
		}
	}

	t.Render()
}
