package numeric

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errOutOfRange = errors.New("out of range")
	errFractional = errors.New("fractional part not allowed")
	errEmpty      = errors.New("empty input")
)

// Parse converts raw into a Value of the given kind using the context's
// locale rules. Failures satisfy errors.Is(err, ErrParse) except for an
// invalid kind, which is a contract violation reported as ErrUnsupportedKind.
func Parse(raw string, kind Kind, fc FormattingContext) (Value, error) {
	if !kind.Valid() {
		return Value{}, &UnsupportedKindError{Kind: kind}
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}, parseError(raw, kind, errEmpty)
	}

	normalized := trimmed
	if sep := fc.separator(); sep != "." {
		// Reject "." so "1.5" does not silently parse under a comma locale.
		if strings.Contains(normalized, ".") {
			return Value{}, parseError(raw, kind, errors.New("unexpected separator"))
		}
		normalized = strings.Replace(normalized, sep, ".", 1)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Value{}, parseError(raw, kind, err)
	}

	if kind.Integer() && !d.IsInteger() {
		return Value{}, parseError(raw, kind, errFractional)
	}
	if !kind.inRange(d) {
		return Value{}, parseError(raw, kind, errOutOfRange)
	}

	return Value{kind: kind, dec: d, set: true}, nil
}

// Format renders the value as a string under the context's locale rules.
// Unset values return "" with ok=false. A value whose kind escaped the
// supported set is a contract violation and returns UnsupportedKindError.
func Format(v Value, fc FormattingContext) (string, bool, error) {
	if !v.set {
		return "", false, nil
	}

	var out string
	switch v.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		out = v.dec.Truncate(0).String()
	case KindFloat32, KindFloat64, KindDecimal:
		out = v.dec.StringFixed(int32(fc.decimals()))
	default:
		return "", false, &UnsupportedKindError{Kind: v.kind}
	}

	if sep := fc.separator(); sep != "." {
		out = strings.Replace(out, ".", sep, 1)
	}
	return out, true, nil
}
