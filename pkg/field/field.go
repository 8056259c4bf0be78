// Package field provides the layout wrapper components place themselves in.
// Its single responsibility is CSS class composition: when a column size is
// configured its derived class fragment is appended before any base class so
// grid placement always wins the cascade ordering hosts rely on.
package field

import (
	"strconv"
	"strings"
)

// Breakpoint names the responsive tier a column span applies from. The keys
// match the grid tiers supported by the runtime stylesheets.
type Breakpoint string

const (
	BreakpointNone       Breakpoint = ""
	BreakpointSmall      Breakpoint = "sm"
	BreakpointMedium     Breakpoint = "md"
	BreakpointLarge      Breakpoint = "lg"
	BreakpointExtraLarge Breakpoint = "xl"
	BreakpointUltraWide  Breakpoint = "2xl"
)

// GridColumns is the number of columns in the layout grid spans resolve
// against.
const GridColumns = 12

// ColumnSize describes a responsive column span.
type ColumnSize struct {
	Span       int
	Breakpoint Breakpoint
}

// Valid reports whether the span fits the grid. Zero and negative spans,
// or spans wider than the grid, produce no class fragment.
func (c ColumnSize) Valid() bool {
	return c.Span > 0 && c.Span <= GridColumns
}

// Class returns the derived class fragment, e.g. "col-6" or "col-md-6".
// Invalid sizes return "".
func (c ColumnSize) Class() string {
	if !c.Valid() {
		return ""
	}
	var b strings.Builder
	b.WriteString("col-")
	if c.Breakpoint != BreakpointNone {
		b.WriteString(string(c.Breakpoint))
		b.WriteByte('-')
	}
	b.WriteString(strconv.Itoa(c.Span))
	return b.String()
}

// Field wraps a control with layout chrome. Classes composition is pure:
// it only appends to the supplied builder.
type Field struct {
	Name       string
	Label      string
	Help       string
	Icon       string
	ColumnSize *ColumnSize
	// Classes are extra caller-supplied classes appended after the base
	// chrome class.
	Classes []string
}

// baseClass is the chrome class every field wrapper carries.
const baseClass = "fieldkit-field"

// BuildClasses appends the field's class list to the builder: the column
// class first when a column size is present, then the base chrome class,
// then any extra classes.
func (f *Field) BuildClasses(b *ClassBuilder) {
	if f == nil || b == nil {
		return
	}
	if f.ColumnSize != nil {
		b.Append(f.ColumnSize.Class())
	}
	b.Append(baseClass)
	for _, class := range f.Classes {
		b.Append(class)
	}
}

// ClassAttribute is a convenience that composes the class list into a single
// attribute value.
func (f *Field) ClassAttribute() string {
	var b ClassBuilder
	f.BuildClasses(&b)
	return b.String()
}
