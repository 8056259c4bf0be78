package field

import "strings"

// ClassBuilder accumulates an ordered, deduplicated CSS class list. The zero
// value is ready to use.
type ClassBuilder struct {
	classes []string
	seen    map[string]struct{}
}

// Append adds a class, ignoring empty or whitespace-only fragments and
// duplicates. Fragments containing spaces are split into individual classes.
func (b *ClassBuilder) Append(class string) {
	trimmed := strings.TrimSpace(class)
	if trimmed == "" {
		return
	}
	for _, part := range strings.Fields(trimmed) {
		if b.seen == nil {
			b.seen = make(map[string]struct{})
		}
		if _, dup := b.seen[part]; dup {
			continue
		}
		b.seen[part] = struct{}{}
		b.classes = append(b.classes, part)
	}
}

// Classes returns the accumulated list in insertion order.
func (b *ClassBuilder) Classes() []string {
	return append([]string(nil), b.classes...)
}

// String joins the list into a class attribute value.
func (b *ClassBuilder) String() string {
	return strings.Join(b.classes, " ")
}
