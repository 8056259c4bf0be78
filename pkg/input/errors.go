package input

import "errors"

var (
	// ErrDisposed is returned when a lifecycle operation reaches a component
	// that has already been disposed. Disposed is terminal.
	ErrDisposed = errors.New("input: component disposed")

	// ErrNoBridge is returned by Mount when no bridge was configured.
	ErrNoBridge = errors.New("input: no bridge configured")

	// ErrInvalidKind is returned by New when the requested kind is outside
	// the supported set.
	ErrInvalidKind = errors.New("input: invalid numeric kind")
)
