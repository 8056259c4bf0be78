package input

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

// Option mutates component parameters. Options are applied in order at
// construction and can be re-applied later through Apply to model host
// parameter-update notifications.
type Option func(*NumericInput)

// WithValue seeds the component with a raw value string, parsed under the
// formatting context active once all options have been applied. A value that
// fails to parse leaves the component unset, matching the silent-absorb rule.
func WithValue(raw string) Option {
	return func(c *NumericInput) {
		c.pendingValue = &raw
	}
}

// WithStep sets the increment used by StepValue. Defaults to 1 when never
// configured. Non-positive steps are kept as-is; a zero step makes StepValue
// a defined no-op.
func WithStep(step decimal.Decimal) Option {
	return func(c *NumericInput) {
		c.step = step
	}
}

// WithMin sets the inclusive lower bound for step updates. Pass nil to clear.
func WithMin(min *decimal.Decimal) Option {
	return func(c *NumericInput) {
		c.min = cloneBound(min)
	}
}

// WithMax sets the inclusive upper bound for step updates. Pass nil to clear.
func WithMax(max *decimal.Decimal) Option {
	return func(c *NumericInput) {
		c.max = cloneBound(max)
	}
}

// WithDecimals sets the fractional place count used when formatting.
func WithDecimals(decimals int) Option {
	return func(c *NumericInput) {
		c.fc.Decimals = decimals
	}
}

// WithDecimalsSeparator overrides the decimal separator regardless of the
// configured culture.
func WithDecimalsSeparator(sep string) Option {
	return func(c *NumericInput) {
		if trimmed := strings.TrimSpace(sep); trimmed != "" {
			c.fc.Separator = trimmed
		}
	}
}

// WithCulture derives separator conventions from a culture tag. Decimals and
// any explicit separator applied after this option win.
func WithCulture(tag language.Tag) Option {
	return func(c *NumericInput) {
		derived := numeric.ContextFor(tag)
		c.fc.Culture = derived.Culture
		c.fc.Separator = derived.Separator
	}
}

// WithDisabled toggles the disabled state. Disabled components ignore step
// requests.
func WithDisabled(disabled bool) Option {
	return func(c *NumericInput) {
		c.disabled = disabled
	}
}

// WithReadOnly toggles the read-only state. Read-only components ignore step
// requests.
func WithReadOnly(readOnly bool) Option {
	return func(c *NumericInput) {
		c.readOnly = readOnly
	}
}

// WithVisibleCharacters hints how wide the host surface should draw the
// element.
func WithVisibleCharacters(chars int) Option {
	return func(c *NumericInput) {
		if chars > 0 {
			c.visibleChars = chars
		}
	}
}

// WithShowSpinner toggles the host-rendered spinner affordance.
func WithShowSpinner(show bool) Option {
	return func(c *NumericInput) {
		c.showSpinner = show
	}
}

// WithElementID names the host element the bridge binds to.
func WithElementID(id string) Option {
	return func(c *NumericInput) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			c.elementID = trimmed
		}
	}
}

// WithBridge wires the host interop implementation used during Mount and
// Dispose.
func WithBridge(bridge Bridge) Option {
	return func(c *NumericInput) {
		c.bridge = bridge
	}
}

// OnValueChanged registers the observer notified exactly once per successful
// value update.
func OnValueChanged(fn func(numeric.Value)) Option {
	return func(c *NumericInput) {
		c.onValueChanged = fn
	}
}

// OnRenderRequested registers the observer signalled after a successful step
// update.
func OnRenderRequested(fn func()) Option {
	return func(c *NumericInput) {
		c.onRenderRequested = fn
	}
}

// OnParseFailure registers an optional diagnostic hook for absorbed parse
// failures. The component state is already unchanged when it fires.
func OnParseFailure(fn func(raw string, err error)) Option {
	return func(c *NumericInput) {
		c.onParseFailure = fn
	}
}

func cloneBound(bound *decimal.Decimal) *decimal.Decimal {
	if bound == nil {
		return nil
	}
	value := *bound
	return &value
}
