package numeric

import "github.com/shopspring/decimal"

// Kind identifies the concrete representation a Value is bound to. The set is
// closed: every switch over Kind in this package handles all members and
// treats anything else as an UnsupportedKindError.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindDecimal: "decimal",
}

// String reports the canonical lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Valid reports whether the kind belongs to the supported set.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindDecimal
}

// Integer reports whether the kind stores whole numbers only.
func (k Kind) Integer() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
	return false
}

// Fractional reports whether the kind can carry a fractional part.
func (k Kind) Fractional() bool {
	switch k {
	case KindFloat32, KindFloat64, KindDecimal:
		return true
	}
	return false
}

// kindRange holds the representable bounds for bounded kinds. Float and
// decimal kinds have no entry; they are treated as unbounded for range checks.
type kindRange struct {
	min decimal.Decimal
	max decimal.Decimal
}

var kindRanges = map[Kind]kindRange{
	KindInt8:    {min: mustDecimal("-128"), max: mustDecimal("127")},
	KindInt16:   {min: mustDecimal("-32768"), max: mustDecimal("32767")},
	KindInt32:   {min: mustDecimal("-2147483648"), max: mustDecimal("2147483647")},
	KindInt64:   {min: mustDecimal("-9223372036854775808"), max: mustDecimal("9223372036854775807")},
	KindUint8:   {min: decimal.Zero, max: mustDecimal("255")},
	KindUint16:  {min: decimal.Zero, max: mustDecimal("65535")},
	KindUint32:  {min: decimal.Zero, max: mustDecimal("4294967295")},
	KindUint64:  {min: decimal.Zero, max: mustDecimal("18446744073709551615")},
}

func mustDecimal(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

// inRange reports whether d is representable by the kind. Unbounded kinds
// always report true.
func (k Kind) inRange(d decimal.Decimal) bool {
	bounds, ok := kindRanges[k]
	if !ok {
		return true
	}
	return d.Cmp(bounds.min) >= 0 && d.Cmp(bounds.max) <= 0
}
