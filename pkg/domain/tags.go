package domain

import (
	"strings"
)

// Tags is a set of normalized labels. Order carries no meaning.
type Tags []string

// NormalizeTag lower-cases a label and strips surrounding space and a leading '@'.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "@"))
}

// ParseTags splits a declaration such as "@fast @db" or "fast,db" into Tags.
func ParseTags(raw string) Tags {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	tags := make(Tags, 0, len(fields))
	tags.Add(fields...)
	return tags
}

// Add appends the given labels, skipping empty ones and those already present.
func (t *Tags) Add(tags ...string) {
	for _, raw := range tags {
		tag := NormalizeTag(raw)
		if tag == "" || t.Has(tag) {
			continue
		}
		*t = append(*t, tag)
	}
}

// Has reports whether the set contains tag.
func (t Tags) Has(tag string) bool {
	tag = NormalizeTag(tag)
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}

// HasAny reports whether the two sets intersect.
func (t Tags) HasAny(other Tags) bool {
	for _, tag := range other {
		if t.Has(tag) {
			return true
		}
	}
	return false
}

func (t Tags) String() string {
	return strings.Join(t, ",")
}
