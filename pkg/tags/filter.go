package tags

import (
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// Filter selects examples by their inherited tags. The zero value runs everything.
type Filter struct {
	// Include, when non-empty, keeps only examples carrying at least one of these tags.
	Include domain.Tags

	// Exclude drops examples carrying any of these tags. It wins over Include.
	Exclude domain.Tags

	// SkipPending drops pending examples instead of reporting them.
	SkipPending bool
}

// Parse builds a Filter from a single expression such as "fast,~slow".
// Tags prefixed with '~' are excluded, the others included.
func Parse(expr string) *Filter {
	f := &Filter{}
	for _, tag := range domain.ParseTags(expr) {
		if excluded, ok := strings.CutPrefix(tag, "~"); ok {
			f.Exclude.Add(excluded)
			continue
		}
		f.Include.Add(tag)
	}
	return f
}

// NewFilter builds a Filter from separate include and exclude declarations.
func NewFilter(include, exclude string) *Filter {
	f := Parse(include)
	f.Exclude.Add(domain.ParseTags(exclude)...)
	return f
}

// ShouldSkip implements domain.TagFilter.
func (f *Filter) ShouldSkip(tags domain.Tags, pending bool) bool {
	if f == nil {
		return false
	}
	if pending && f.SkipPending {
		return true
	}
	if tags.HasAny(f.Exclude) {
		return true
	}
	return len(f.Include) > 0 && !tags.HasAny(f.Include)
}

// String renders the filter back into the Parse syntax.
func (f *Filter) String() string {
	parts := make([]string, 0, len(f.Include)+len(f.Exclude))
	parts = append(parts, f.Include...)
	for _, tag := range f.Exclude {
		parts = append(parts, "~"+tag)
	}
	return strings.Join(parts, ",")
}
