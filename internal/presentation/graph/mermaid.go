package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a context tree.
// It applies semantic styling:
// - Root context: ((Circle))
// - Context: [Rectangle], annotated with its declared hook phases
// - Example: (["Stadium"])
// - Pending example: [/Parallelogram/]
// When withStatus is set, examples and contexts are classed by their outcome.
func GenerateMermaid(root *domain.Context, withStatus bool) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	g := &generator{sb: &sb}
	g.context(root, "c0")

	if withStatus {
		sb.WriteString("\n    %% Status Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef passed fill:#dcfce7,stroke:#16a34a,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#fee2e2,stroke:#dc2626,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef pending fill:#fef9c3,stroke:#ca8a04,stroke-dasharray:4,color:#000;\n")
		sb.WriteString("    classDef skipped fill:#f3f4f6,stroke:#9ca3af,color:#6b7280;\n")
		for _, c := range g.classes {
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", c.id, c.class))
		}
	}

	return sb.String()
}

type classAssignment struct {
	id, class string
}

type generator struct {
	sb      *strings.Builder
	classes []classAssignment
}

func (g *generator) context(c *domain.Context, id string) {
	opener, closer := "[", "]"
	if c.Parent == nil {
		opener, closer = "((", "))"
	}

	label := escapeLabel(c.Name)
	if phases := c.Hooks.Declared(); len(phases) > 0 {
		names := make([]string, len(phases))
		for i, p := range phases {
			names[i] = p.String()
		}
		label = fmt.Sprintf("%s <br/> %s", label, strings.Join(names, ", "))
	}
	g.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

	if c.Err != nil {
		g.classes = append(g.classes, classAssignment{id, string(domain.StatusFailed)})
	}

	for i, e := range c.Examples {
		exID := fmt.Sprintf("%s_e%d", id, i)
		opener, closer := "([", "])"
		if e.Pending {
			opener, closer = "[/", "/]"
		}
		g.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", exID, opener, escapeLabel(e.Name), closer))
		g.sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, exID))
		g.classes = append(g.classes, classAssignment{exID, string(e.Status())})
	}

	for i, child := range c.Contexts {
		childID := fmt.Sprintf("%s_%d", id, i)
		g.context(child, childID)
		g.sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, childID))
	}
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
