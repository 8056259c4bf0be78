// Package input implements the fieldkit numeric edit component. A
// NumericInput owns a single numeric.Value synchronized with an externally
// rendered input surface through the Bridge contract: the host pushes raw
// strings in via SetValueFromExternalString, the component pushes formatted
// values and re-render requests back out through observer callbacks.
//
// The component runs an explicit Unmounted -> Mounted -> Disposed lifecycle.
// The bridge handle is acquired at most once, on the Mounted transition, and
// released on every disposal path, including disposal before the first mount.
// All operations are synchronous and host-driven; the package spawns no
// goroutines and holds no locks.
package input
