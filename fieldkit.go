// Package fieldkit provides embeddable form-field components for host-driven
// UIs: a numeric edit component synchronized with an external input surface
// through a bridge contract, and a layout field wrapper that composes CSS
// class lists. The root package re-exports the common entry points; the
// building blocks live under pkg/.
package fieldkit

import (
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

// NumericInput re-exports the numeric edit component.
type NumericInput = input.NumericInput

// Field re-exports the layout wrapper.
type Field = field.Field

// ColumnSize re-exports the responsive span descriptor.
type ColumnSize = field.ColumnSize

// Kind re-exports the numeric kind enumeration.
type Kind = numeric.Kind

// Value re-exports the kind-bound numeric value.
type Value = numeric.Value

// FormattingContext re-exports the locale conversion rules.
type FormattingContext = numeric.FormattingContext

// Bridge re-exports the host interop contract.
type Bridge = input.Bridge

// Direction re-exports the step direction.
type Direction = input.Direction

const (
	DirectionUp   = input.DirectionUp
	DirectionDown = input.DirectionDown
)

// Supported numeric kinds.
const (
	KindInt8    = numeric.KindInt8
	KindInt16   = numeric.KindInt16
	KindInt32   = numeric.KindInt32
	KindInt64   = numeric.KindInt64
	KindUint8   = numeric.KindUint8
	KindUint16  = numeric.KindUint16
	KindUint32  = numeric.KindUint32
	KindUint64  = numeric.KindUint64
	KindFloat32 = numeric.KindFloat32
	KindFloat64 = numeric.KindFloat64
	KindDecimal = numeric.KindDecimal
)

// NewNumericInput constructs a numeric edit component bound to kind.
func NewNumericInput(kind Kind, opts ...input.Option) (*NumericInput, error) {
	return input.New(kind, opts...)
}
