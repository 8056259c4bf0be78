package numeric

import (
	"errors"
	"fmt"
)

// ErrParse marks recoverable conversion failures: malformed input or values
// outside the representable range of the target kind. Callers that swallow
// parse failures can still branch on it with errors.Is.
var ErrParse = errors.New("numeric: parse error")

// ErrUnsupportedKind marks a contract violation: a Value reached a conversion
// path with a kind outside the supported set. This is never silently coerced.
var ErrUnsupportedKind = errors.New("numeric: unsupported kind")

// ParseError carries the raw input and target kind of a failed conversion.
type ParseError struct {
	Raw  string
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("numeric: parse %q as %s: %v", e.Raw, e.Kind, e.Err)
	}
	return fmt.Sprintf("numeric: parse %q as %s", e.Raw, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func parseError(raw string, kind Kind, err error) error {
	return &ParseError{Raw: raw, Kind: kind, Err: err}
}

// UnsupportedKindError identifies the offending kind on the fatal path.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("numeric: unsupported kind %d (%s)", uint8(e.Kind), e.Kind)
}

func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupportedKind
}
