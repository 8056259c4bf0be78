package uiconfig

import (
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

// FieldConfig is the normalized overlay for a single named field.
type FieldConfig struct {
	Label       string
	Help        string
	Icon        string
	Class       string
	Column      *field.ColumnSize
	Decimals    *int
	Separator   string
	ShowSpinner *bool
	Step        string
	Min         string
	Max         string
}

// ApplyTo copies the layout portion of the overlay onto a field wrapper.
// Empty overlay values leave the target untouched.
func (fc FieldConfig) ApplyTo(target *field.Field) {
	if target == nil {
		return
	}
	if fc.Label != "" {
		target.Label = fc.Label
	}
	if fc.Help != "" {
		target.Help = fc.Help
	}
	if fc.Icon != "" {
		target.Icon = fc.Icon
	}
	if fc.Class != "" {
		target.Classes = append(target.Classes, fc.Class)
	}
	if fc.Column != nil {
		column := *fc.Column
		target.ColumnSize = &column
	}
}

// Options translates the numeric portion of the overlay into component
// options. Bound and step strings that fail to parse are skipped; overlays
// are hints, not contracts.
func (fc FieldConfig) Options() []input.Option {
	var opts []input.Option
	if fc.Decimals != nil {
		opts = append(opts, input.WithDecimals(*fc.Decimals))
	}
	if fc.Separator != "" {
		opts = append(opts, input.WithDecimalsSeparator(fc.Separator))
	}
	if fc.ShowSpinner != nil {
		opts = append(opts, input.WithShowSpinner(*fc.ShowSpinner))
	}
	if d, ok := parseDecimal(fc.Step); ok {
		opts = append(opts, input.WithStep(d))
	}
	if d, ok := parseDecimal(fc.Min); ok {
		opts = append(opts, input.WithMin(&d))
	}
	if d, ok := parseDecimal(fc.Max); ok {
		opts = append(opts, input.WithMax(&d))
	}
	return opts
}

// Store holds the merged overlays from every loaded file.
type Store struct {
	culture string
	fields  map[string]FieldConfig
}

// Field returns the overlay for the named field.
func (s *Store) Field(name string) (FieldConfig, bool) {
	if s == nil {
		return FieldConfig{}, false
	}
	cfg, ok := s.fields[name]
	return cfg, ok
}

// Culture reports the configured culture name, "" when none was set.
func (s *Store) Culture() string {
	if s == nil {
		return ""
	}
	return s.culture
}

// FormattingContext derives the numeric formatting context from the
// configured culture, falling back to defaults when no culture was set.
func (s *Store) FormattingContext() numeric.FormattingContext {
	return numeric.ContextForCulture(s.Culture())
}
