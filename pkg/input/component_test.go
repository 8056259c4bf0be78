package input

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

func mustComponent(t *testing.T, kind numeric.Kind, opts ...Option) *NumericInput {
	t.Helper()
	c, err := New(kind, opts...)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}
	return c
}

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("decimal %q: %v", raw, err)
	}
	return d
}

func decPtr(t *testing.T, raw string) *decimal.Decimal {
	t.Helper()
	d := dec(t, raw)
	return &d
}

func TestNew_RejectsInvalidKind(t *testing.T) {
	if _, err := New(numeric.KindInvalid); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestSetValueFromExternalString_NotifiesOncePerUpdate(t *testing.T) {
	var notified []numeric.Value
	c := mustComponent(t, numeric.KindInt32, OnValueChanged(func(v numeric.Value) {
		notified = append(notified, v)
	}))

	if err := c.SetValueFromExternalString("7"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if len(notified) != 1 {
		t.Fatalf("expected one notification, got %d", len(notified))
	}
	if got := notified[0].Decimal().String(); got != "7" {
		t.Fatalf("notified value mismatch: %s", got)
	}
}

func TestSetValueFromExternalString_ParseFailureKeepsValue(t *testing.T) {
	notifications := 0
	var failures []string
	c := mustComponent(t, numeric.KindInt32,
		WithValue("7"),
		OnParseFailure(func(raw string, err error) {
			failures = append(failures, raw)
			if !errors.Is(err, numeric.ErrParse) {
				t.Errorf("failure hook should carry a parse error, got %v", err)
			}
		}),
	)
	c.Apply(OnValueChanged(func(numeric.Value) { notifications++ }))

	err := c.SetValueFromExternalString("abc")
	if !errors.Is(err, numeric.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if notifications != 0 {
		t.Fatalf("parse failure must not notify, got %d notifications", notifications)
	}
	if got := c.Value().Decimal().String(); got != "7" {
		t.Fatalf("value should be untouched, got %s", got)
	}
	if len(failures) != 1 || failures[0] != "abc" {
		t.Fatalf("diagnostic hook mismatch: %v", failures)
	}
}

func TestFormatCurrentValue_UnsetYieldsNothing(t *testing.T) {
	c := mustComponent(t, numeric.KindDecimal)
	out, ok, err := c.FormatCurrentValue()
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if ok || out != "" {
		t.Fatalf("unset value should produce no output, got %q (ok=%v)", out, ok)
	}
}

func TestStepValue_UpThenDownRestoresOriginal(t *testing.T) {
	c := mustComponent(t, numeric.KindDecimal,
		WithValue("2.50"),
		WithStep(dec(t, "0.25")),
		WithDecimals(2),
	)

	c.StepValue(DirectionUp)
	if got, _, _ := c.FormatCurrentValue(); got != "2.75" {
		t.Fatalf("after step up want 2.75 got %q", got)
	}

	c.StepValue(DirectionDown)
	if got, _, _ := c.FormatCurrentValue(); got != "2.50" {
		t.Fatalf("after step down want 2.50 got %q", got)
	}
}

func TestStepValue_NoOpWhenDisabledOrReadOnly(t *testing.T) {
	for _, opt := range []Option{WithDisabled(true), WithReadOnly(true)} {
		c := mustComponent(t, numeric.KindInt32, WithValue("5"), opt)
		c.StepValue(DirectionUp)
		if got := c.Value().Decimal().String(); got != "5" {
			t.Fatalf("step on inert component changed value to %s", got)
		}
	}
}

func TestStepValue_RespectsBounds(t *testing.T) {
	c := mustComponent(t, numeric.KindInt32,
		WithValue("5"),
		WithMax(decPtr(t, "5")),
		WithMin(decPtr(t, "3")),
	)

	c.StepValue(DirectionUp)
	if got := c.Value().Decimal().String(); got != "5" {
		t.Fatalf("step past max should be a no-op, got %s", got)
	}

	c.StepValue(DirectionDown)
	c.StepValue(DirectionDown)
	if got := c.Value().Decimal().String(); got != "3" {
		t.Fatalf("want 3 at lower bound, got %s", got)
	}

	c.StepValue(DirectionDown)
	if got := c.Value().Decimal().String(); got != "3" {
		t.Fatalf("step past min should be a no-op, got %s", got)
	}
}

func TestStepValue_UnsetStartsFromZero(t *testing.T) {
	c := mustComponent(t, numeric.KindInt32)
	c.StepValue(DirectionUp)
	if got := c.Value().Decimal().String(); got != "1" {
		t.Fatalf("stepping an unset value should land on 1, got %s", got)
	}
}

func TestStepValue_FractionalStepOnIntegerKindTruncates(t *testing.T) {
	c := mustComponent(t, numeric.KindInt32,
		WithValue("5"),
		WithStep(dec(t, "1.5")),
	)
	c.StepValue(DirectionUp)
	if got := c.Value().Decimal().String(); got != "6" {
		t.Fatalf("5 + 1.5 truncated should be 6, got %s", got)
	}
}

func TestStepValue_RequestsRenderOnSuccessOnly(t *testing.T) {
	renders := 0
	c := mustComponent(t, numeric.KindInt32,
		WithValue("5"),
		WithMax(decPtr(t, "5")),
		OnRenderRequested(func() { renders++ }),
	)

	c.StepValue(DirectionUp)
	if renders != 0 {
		t.Fatalf("blocked step must not request a render")
	}

	c.StepValue(DirectionDown)
	if renders != 1 {
		t.Fatalf("successful step should request exactly one render, got %d", renders)
	}
}

func TestStepValue_KindOverflowIsSilent(t *testing.T) {
	c := mustComponent(t, numeric.KindInt8, WithValue("127"))
	c.StepValue(DirectionUp)
	if got := c.Value().Decimal().String(); got != "127" {
		t.Fatalf("overflowing step should leave value untouched, got %s", got)
	}
}

func TestStepValue_CultureSeparatorSurvivesRoundTrip(t *testing.T) {
	c := mustComponent(t, numeric.KindDecimal,
		WithDecimalsSeparator(","),
		WithDecimals(2),
		WithValue("2,50"),
		WithStep(dec(t, "0.25")),
	)

	c.StepValue(DirectionUp)
	got, ok, err := c.FormatCurrentValue()
	if err != nil || !ok {
		t.Fatalf("format: ok=%v err=%v", ok, err)
	}
	if got != "2,75" {
		t.Fatalf("want 2,75 got %q", got)
	}
}

func TestApply_ModelsParameterUpdates(t *testing.T) {
	c := mustComponent(t, numeric.KindInt32, WithValue("5"))

	c.Apply(WithDisabled(true))
	c.StepValue(DirectionUp)
	if got := c.Value().Decimal().String(); got != "5" {
		t.Fatalf("disabled via Apply should block stepping, got %s", got)
	}

	c.Apply(WithDisabled(false), WithStep(dec(t, "2")))
	c.StepValue(DirectionUp)
	if got := c.Value().Decimal().String(); got != "7" {
		t.Fatalf("want 7 after re-enable with step 2, got %s", got)
	}
}

type recordingBridge struct {
	initCalls    int
	destroyCalls int
	releaseCalls int
	handle       *Handle
	elementID    string
	opts         BridgeOptions
	initErr      error
}

func (b *recordingBridge) Initialize(_ context.Context, handle *Handle, elementID string, opts BridgeOptions) error {
	if b.initErr != nil {
		return b.initErr
	}
	b.initCalls++
	b.handle = handle
	b.elementID = elementID
	b.opts = opts
	return nil
}

func (b *recordingBridge) Destroy(_ context.Context, elementID string) error {
	b.destroyCalls++
	b.elementID = elementID
	return nil
}

func (b *recordingBridge) ReleaseHandle(*Handle) error {
	b.releaseCalls++
	return nil
}

func TestMount_RegistersBridgeOnce(t *testing.T) {
	bridge := &recordingBridge{}
	c := mustComponent(t, numeric.KindDecimal,
		WithBridge(bridge),
		WithElementID("qty"),
		WithDecimals(2),
		WithStep(dec(t, "0.25")),
		WithMax(decPtr(t, "10")),
	)

	ctx := context.Background()
	if err := c.Mount(ctx); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := c.Mount(ctx); err != nil {
		t.Fatalf("second mount: %v", err)
	}

	if bridge.initCalls != 1 {
		t.Fatalf("initialize must run at most once per mount, got %d", bridge.initCalls)
	}
	if bridge.elementID != "qty" {
		t.Fatalf("element id mismatch: %q", bridge.elementID)
	}
	if bridge.opts.Decimals != 2 || !bridge.opts.Step.Equal(dec(t, "0.25")) {
		t.Fatalf("bridge options not forwarded: %+v", bridge.opts)
	}
	if bridge.opts.Max == nil || !bridge.opts.Max.Equal(dec(t, "10")) {
		t.Fatalf("max bound not forwarded: %+v", bridge.opts.Max)
	}
	if c.Phase() != PhaseMounted {
		t.Fatalf("phase should be mounted, got %s", c.Phase())
	}
}

func TestDispose_ReleasesHandleOnEveryPath(t *testing.T) {
	t.Run("after mount", func(t *testing.T) {
		bridge := &recordingBridge{}
		c := mustComponent(t, numeric.KindInt32, WithBridge(bridge))
		ctx := context.Background()

		if err := c.Mount(ctx); err != nil {
			t.Fatalf("mount: %v", err)
		}
		handle := bridge.handle
		if err := c.Dispose(ctx); err != nil {
			t.Fatalf("dispose: %v", err)
		}

		if bridge.destroyCalls != 1 || bridge.releaseCalls != 1 {
			t.Fatalf("expected destroy+release once, got %d/%d", bridge.destroyCalls, bridge.releaseCalls)
		}
		if handle.Component() != nil {
			t.Fatalf("released handle should no longer reach the component")
		}
		if c.Phase() != PhaseDisposed {
			t.Fatalf("phase should be disposed, got %s", c.Phase())
		}
	})

	t.Run("before mount", func(t *testing.T) {
		bridge := &recordingBridge{}
		c := mustComponent(t, numeric.KindInt32, WithBridge(bridge))

		if err := c.Dispose(context.Background()); err != nil {
			t.Fatalf("dispose: %v", err)
		}
		if bridge.destroyCalls != 0 || bridge.releaseCalls != 0 {
			t.Fatalf("dispose before mount must not touch the bridge")
		}
	})

	t.Run("twice", func(t *testing.T) {
		bridge := &recordingBridge{}
		c := mustComponent(t, numeric.KindInt32, WithBridge(bridge))
		ctx := context.Background()

		if err := c.Mount(ctx); err != nil {
			t.Fatalf("mount: %v", err)
		}
		if err := c.Dispose(ctx); err != nil {
			t.Fatalf("dispose: %v", err)
		}
		if err := c.Dispose(ctx); err != nil {
			t.Fatalf("repeat dispose: %v", err)
		}
		if bridge.destroyCalls != 1 || bridge.releaseCalls != 1 {
			t.Fatalf("repeat dispose must not re-release, got %d/%d", bridge.destroyCalls, bridge.releaseCalls)
		}
	})
}

func TestMount_AfterDisposeFails(t *testing.T) {
	c := mustComponent(t, numeric.KindInt32, WithBridge(&recordingBridge{}))
	ctx := context.Background()

	if err := c.Dispose(ctx); err != nil {
		t.Fatalf("dispose: %v", err)
	}
	if err := c.Mount(ctx); !errors.Is(err, ErrDisposed) {
		t.Fatalf("expected ErrDisposed, got %v", err)
	}
}

func TestMount_InitializeFailureStaysUnmounted(t *testing.T) {
	boom := errors.New("boom")
	bridge := &recordingBridge{initErr: boom}
	c := mustComponent(t, numeric.KindInt32, WithBridge(bridge))

	if err := c.Mount(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected initialize error, got %v", err)
	}
	if c.Phase() != PhaseUnmounted {
		t.Fatalf("failed mount should stay unmounted, got %s", c.Phase())
	}
}

func TestHandle_SetValueRoutesIntoComponent(t *testing.T) {
	bridge := &recordingBridge{}
	c := mustComponent(t, numeric.KindInt32, WithBridge(bridge))
	if err := c.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	bridge.handle.SetValue("42")
	if got := c.Value().Decimal().String(); got != "42" {
		t.Fatalf("handle set value should store 42, got %s", got)
	}

	// Absorbed silently, value keeps its last accepted amount.
	bridge.handle.SetValue("not a number")
	if got := c.Value().Decimal().String(); got != "42" {
		t.Fatalf("bad input through handle should be absorbed, got %s", got)
	}
}
