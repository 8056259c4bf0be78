// Package tui drives fieldkit components from a terminal. The Session acts
// as the component's host surface: it implements the bridge contract, feeds
// typed strings through the component's set-value path, and maps menu
// selections onto step operations. The survey-backed driver is swappable so
// session logic stays testable without a TTY.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

const (
	actionEnterValue = "Enter value"
	actionStepUp     = "Step up"
	actionStepDown   = "Step down"
	actionDone       = "Done"
)

// Option customises a session.
type Option func(*Session)

// WithDriver swaps the prompt implementation. Defaults to the survey driver.
func WithDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session is a terminal host for a numeric input. It satisfies input.Bridge;
// Run wires itself in as the component's bridge for the duration of the
// interaction.
type Session struct {
	driver PromptDriver

	boundElement string
	bridgeOpts   input.BridgeOptions
	handleLive   bool
}

// NewSession constructs a session with the survey-backed driver.
func NewSession(options ...Option) *Session {
	s := &Session{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Initialize records the element binding, fulfilling the bridge contract.
func (s *Session) Initialize(_ context.Context, _ *input.Handle, elementID string, opts input.BridgeOptions) error {
	s.boundElement = elementID
	s.bridgeOpts = opts
	s.handleLive = true
	return nil
}

// Destroy clears the element binding.
func (s *Session) Destroy(_ context.Context, elementID string) error {
	if elementID == s.boundElement {
		s.boundElement = ""
	}
	return nil
}

// ReleaseHandle marks the handle dead on the host side.
func (s *Session) ReleaseHandle(*input.Handle) error {
	s.handleLive = false
	return nil
}

// Bound reports whether the session currently owns a live handle.
func (s *Session) Bound() bool {
	return s.handleLive
}

// Run mounts the component against this session and loops over the action
// menu until the user finishes or interrupts. The component is disposed on
// every exit path.
func (s *Session) Run(ctx context.Context, c *input.NumericInput, fld *field.Field) (err error) {
	if c == nil {
		return errors.New("tui: nil component")
	}

	c.Apply(input.WithBridge(s))
	if err := c.Mount(ctx); err != nil {
		return fmt.Errorf("tui: mount: %w", err)
	}
	defer func() {
		if disposeErr := c.Dispose(ctx); disposeErr != nil && err == nil {
			err = fmt.Errorf("tui: dispose: %w", disposeErr)
		}
	}()

	label := "Value"
	if fld != nil && fld.Label != "" {
		label = fld.Label
	}
	if fld != nil && fld.Help != "" {
		if err := s.driver.Info(ctx, fld.Help); err != nil {
			return err
		}
	}

	for {
		choice, err := s.driver.Select(ctx, SelectConfig{
			Message: fmt.Sprintf("%s [%s]", label, displayValue(c)),
			Options: s.menuOptions(c),
		})
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				return nil
			}
			return err
		}

		switch s.menuOptions(c)[choice] {
		case actionEnterValue:
			if err := s.promptValue(ctx, c, label); err != nil {
				if errors.Is(err, ErrInterrupted) {
					continue
				}
				return err
			}
		case actionStepUp:
			c.StepValue(input.DirectionUp)
		case actionStepDown:
			c.StepValue(input.DirectionDown)
		case actionDone:
			return nil
		}
	}
}

// menuOptions hides the step actions when the component cannot act on them.
func (s *Session) menuOptions(c *input.NumericInput) []string {
	if c.Disabled() || c.ReadOnly() {
		return []string{actionEnterValue, actionDone}
	}
	return []string{actionEnterValue, actionStepUp, actionStepDown, actionDone}
}

func (s *Session) promptValue(ctx context.Context, c *input.NumericInput, label string) error {
	current, _, _ := c.FormatCurrentValue()
	raw, err := s.driver.Input(ctx, InputConfig{
		Message: label,
		Default: current,
		Validator: func(value string) error {
			_, parseErr := numeric.Parse(value, c.Kind(), c.Context())
			return parseErr
		},
	})
	if err != nil {
		return err
	}
	// Validated above; absorbed failures here would mean a racing parameter
	// update, which the silent rule covers anyway.
	_ = c.SetValueFromExternalString(raw)
	return nil
}

func displayValue(c *input.NumericInput) string {
	value, ok, err := c.FormatCurrentValue()
	if err != nil || !ok {
		return "unset"
	}
	return value
}
