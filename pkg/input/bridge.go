package input

import (
	"context"

	"github.com/shopspring/decimal"
)

// Handle is the opaque reference a host interop layer keeps so it can route
// surface events back into the component. The component owns its handle for
// the Mounted portion of its lifecycle only.
type Handle struct {
	component *NumericInput
}

// Component returns the component the handle is bound to, or nil after the
// handle has been released.
func (h *Handle) Component() *NumericInput {
	if h == nil {
		return nil
	}
	return h.component
}

// SetValue routes a raw string from the host surface into the component,
// mirroring a native input event. Parse failures are absorbed per the
// component's configuration.
func (h *Handle) SetValue(raw string) {
	if h == nil || h.component == nil {
		return
	}
	_ = h.component.SetValueFromExternalString(raw)
}

func (h *Handle) release() {
	if h != nil {
		h.component = nil
	}
}

// BridgeOptions carries the formatting and constraint parameters a host
// surface needs when it takes ownership of an element.
type BridgeOptions struct {
	Decimals          int
	DecimalsSeparator string
	Step              decimal.Decimal
	Min               *decimal.Decimal
	Max               *decimal.Decimal
}

// Bridge is the external interop contract. The component calls it during
// lifecycle transitions but never implements it; hosts (a DOM interop layer,
// a terminal session, a test recorder) do.
type Bridge interface {
	// Initialize hands the host a live handle for the element. Called at
	// most once per mount.
	Initialize(ctx context.Context, handle *Handle, elementID string, opts BridgeOptions) error
	// Destroy tells the host to tear down whatever it attached to the
	// element during Initialize.
	Destroy(ctx context.Context, elementID string) error
	// ReleaseHandle invalidates the handle on the host side.
	ReleaseHandle(handle *Handle) error
}
