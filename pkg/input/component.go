package input

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

// Direction selects which way StepValue moves the current value.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// NumericInput maintains a numeric value synchronized with an externally
// rendered input surface. See the package documentation for the lifecycle
// and bridge contract.
type NumericInput struct {
	kind  numeric.Kind
	value numeric.Value
	fc    numeric.FormattingContext

	step decimal.Decimal
	min  *decimal.Decimal
	max  *decimal.Decimal

	disabled     bool
	readOnly     bool
	visibleChars int
	showSpinner  bool

	elementID string
	bridge    Bridge
	handle    *Handle
	phase     Phase

	onValueChanged    func(numeric.Value)
	onRenderRequested func()
	onParseFailure    func(raw string, err error)

	// pendingValue buffers a WithValue raw string until every option has
	// been applied, so the parse sees the final formatting context.
	pendingValue *string
}

// New constructs a component bound to the given numeric kind. The kind is
// fixed for the component's lifetime.
func New(kind numeric.Kind, opts ...Option) (*NumericInput, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	c := &NumericInput{
		kind:      kind,
		value:     numeric.Unset(kind),
		fc:        numeric.DefaultContext(),
		step:      decimal.NewFromInt(1),
		elementID: "fieldkit-input",
	}
	c.Apply(opts...)
	return c, nil
}

// Apply re-applies parameter options, modelling a host parameter-update
// notification. A buffered WithValue string is routed through the regular
// set-value path once all options in the batch have run.
func (c *NumericInput) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.pendingValue != nil {
		raw := *c.pendingValue
		c.pendingValue = nil
		_ = c.SetValueFromExternalString(raw)
	}
}

// Kind reports the numeric kind the component is bound to.
func (c *NumericInput) Kind() numeric.Kind { return c.kind }

// Value returns the current value. It is unset until a string has been
// accepted.
func (c *NumericInput) Value() numeric.Value { return c.value }

// Phase reports the lifecycle position.
func (c *NumericInput) Phase() Phase { return c.phase }

// Context returns the active formatting context.
func (c *NumericInput) Context() numeric.FormattingContext { return c.fc }

// Step returns the configured step amount.
func (c *NumericInput) Step() decimal.Decimal { return c.step }

// Min returns the configured lower bound, nil when unbounded.
func (c *NumericInput) Min() *decimal.Decimal { return cloneBound(c.min) }

// Max returns the configured upper bound, nil when unbounded.
func (c *NumericInput) Max() *decimal.Decimal { return cloneBound(c.max) }

// Disabled reports the disabled state.
func (c *NumericInput) Disabled() bool { return c.disabled }

// ReadOnly reports the read-only state.
func (c *NumericInput) ReadOnly() bool { return c.readOnly }

// ShowSpinner reports whether the host should draw a spinner affordance.
func (c *NumericInput) ShowSpinner() bool { return c.showSpinner }

// VisibleCharacters reports the configured width hint, zero when unset.
func (c *NumericInput) VisibleCharacters() int { return c.visibleChars }

// ElementID reports the host element the bridge binds to.
func (c *NumericInput) ElementID() string { return c.elementID }

// SetValueFromExternalString converts raw to the component's kind under the
// active formatting context. On success the value is stored and the
// value-changed observer fires exactly once. On failure the current value is
// untouched, no notification is emitted, and the error (satisfying
// errors.Is(err, numeric.ErrParse)) is returned for callers that want the
// diagnostic; hosts are free to discard it.
func (c *NumericInput) SetValueFromExternalString(raw string) error {
	parsed, err := numeric.Parse(raw, c.kind, c.fc)
	if err != nil {
		if c.onParseFailure != nil {
			c.onParseFailure(raw, err)
		}
		return err
	}

	c.value = parsed
	if c.onValueChanged != nil {
		c.onValueChanged(parsed)
	}
	return nil
}

// FormatCurrentValue renders the stored value under the active formatting
// context. An unset value yields "" with ok=false. A kind outside the
// supported set is a contract violation and returns UnsupportedKindError.
func (c *NumericInput) FormatCurrentValue() (value string, ok bool, err error) {
	return numeric.Format(c.value, c.fc)
}

// StepValue moves the value by the configured step in the given direction.
// The arithmetic happens in decimal space so fractional steps apply to
// integer kinds, truncated on the conversion back. Defined no-ops: disabled
// or read-only components, a step landing exactly on the current value, and
// a step leaving the [min, max] range (unset bounds are unbounded). A
// successful step routes the formatted result through the same path as
// SetValueFromExternalString and then requests a re-render.
func (c *NumericInput) StepValue(direction Direction) {
	if c.disabled || c.readOnly {
		return
	}

	current := c.value.Decimal()
	delta := c.step
	if direction == DirectionDown {
		delta = delta.Neg()
	}
	next := current.Add(delta)

	if next.Equal(current) && c.value.IsSet() {
		return
	}
	if c.min != nil && next.Cmp(*c.min) < 0 {
		return
	}
	if c.max != nil && next.Cmp(*c.max) > 0 {
		return
	}

	converted, err := numeric.FromDecimal(c.kind, next)
	if err != nil {
		// Outside the kind's representable range. Same silent rule as a
		// failed external parse.
		if c.onParseFailure != nil {
			c.onParseFailure(next.String(), err)
		}
		return
	}

	formatted, ok, err := numeric.Format(converted, c.fc)
	if err != nil || !ok {
		return
	}
	if err := c.SetValueFromExternalString(formatted); err != nil {
		return
	}
	if c.onRenderRequested != nil {
		c.onRenderRequested()
	}
}

// Mount transitions Unmounted -> Mounted, registering a bridge handle with
// the host surface. Mounting an already mounted component is a no-op so
// repeated render callbacks cannot double-register. Mounting after disposal
// returns ErrDisposed.
func (c *NumericInput) Mount(ctx context.Context) error {
	switch c.phase {
	case PhaseDisposed:
		return ErrDisposed
	case PhaseMounted:
		return nil
	}
	if c.bridge == nil {
		return ErrNoBridge
	}

	handle := &Handle{component: c}
	if err := c.bridge.Initialize(ctx, handle, c.elementID, c.bridgeOptions()); err != nil {
		return err
	}

	c.handle = handle
	c.phase = PhaseMounted
	return nil
}

// Dispose transitions the component to its terminal phase, releasing the
// bridge handle when one was acquired. Disposal before the first mount
// performs no bridge calls; repeated disposal is a no-op.
func (c *NumericInput) Dispose(ctx context.Context) error {
	if c.phase == PhaseDisposed {
		return nil
	}

	var errs []error
	if c.phase == PhaseMounted && c.bridge != nil {
		if err := c.bridge.Destroy(ctx, c.elementID); err != nil {
			errs = append(errs, err)
		}
		if err := c.bridge.ReleaseHandle(c.handle); err != nil {
			errs = append(errs, err)
		}
	}
	if c.handle != nil {
		c.handle.release()
		c.handle = nil
	}

	c.phase = PhaseDisposed
	return errors.Join(errs...)
}

func (c *NumericInput) bridgeOptions() BridgeOptions {
	return BridgeOptions{
		Decimals:          c.fc.Decimals,
		DecimalsSeparator: c.fc.Separator,
		Step:              c.step,
		Min:               cloneBound(c.min),
		Max:               cloneBound(c.max),
	}
}
