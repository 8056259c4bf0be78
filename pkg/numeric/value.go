package numeric

import "github.com/shopspring/decimal"

// Value is a numeric amount bound to exactly one Kind for its whole lifetime.
// The zero Value is invalid; construct through Unset, FromDecimal, or Parse.
// Values are immutable; mutation means replacing the whole Value.
type Value struct {
	kind Kind
	dec  decimal.Decimal
	set  bool
}

// Unset returns an empty Value of the given kind. Formatting an unset value
// yields no output; stepping treats it as zero.
func Unset(kind Kind) Value {
	return Value{kind: kind}
}

// FromDecimal converts d into a Value of the given kind. Integer kinds
// truncate the fractional part; bounded kinds reject out-of-range amounts
// with an error satisfying errors.Is(err, ErrParse).
func FromDecimal(kind Kind, d decimal.Decimal) (Value, error) {
	if !kind.Valid() {
		return Value{}, &UnsupportedKindError{Kind: kind}
	}
	if kind.Integer() {
		d = d.Truncate(0)
	}
	if !kind.inRange(d) {
		return Value{}, parseError(d.String(), kind, errOutOfRange)
	}
	return Value{kind: kind, dec: d, set: true}, nil
}

// Kind reports the kind the value is bound to.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSet reports whether the value holds an amount.
func (v Value) IsSet() bool {
	return v.set
}

// Decimal returns the amount in decimal space. Unset values report zero.
func (v Value) Decimal() decimal.Decimal {
	if !v.set {
		return decimal.Zero
	}
	return v.dec
}

// Equal reports whether both values are set and hold exactly the same amount
// of the same kind. Two unset values of the same kind are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.set != other.set {
		return false
	}
	if !v.set {
		return true
	}
	return v.dec.Equal(other.dec)
}
