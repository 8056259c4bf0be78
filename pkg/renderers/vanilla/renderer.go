// Package vanilla renders fieldkit components as static, dependency-free
// HTML markup. The markup carries data attributes (step, bounds, separator)
// so a host runtime can attach behavior without re-deriving component state.
package vanilla

import (
	"fmt"
	"html"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
)

// Renderer builds field markup for numeric inputs.
type Renderer struct {
	chrome      map[ChromeClass]string
	theme       *theme.RendererConfig
	templateSrc string
}

// New constructs a renderer with default chrome classes.
func New(options ...Option) *Renderer {
	r := &Renderer{
		chrome: defaultChromeClasses(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render produces the markup for a numeric input inside its field wrapper.
// fld may be nil; the control then renders inside a bare wrapper. The only
// error paths are the component's fatal unsupported-kind formatting failure
// and template execution errors.
func (r *Renderer) Render(c *input.NumericInput, fld *field.Field) (string, error) {
	if c == nil {
		return "", fmt.Errorf("vanilla: nil component")
	}
	if fld == nil {
		fld = &field.Field{Name: c.ElementID()}
	}

	value, _, err := c.FormatCurrentValue()
	if err != nil {
		return "", fmt.Errorf("vanilla: format value: %w", err)
	}

	if r.templateSrc != "" {
		return r.renderTemplate(c, fld, value)
	}

	var b strings.Builder
	b.Grow(512)

	if style := r.themeStyleBlock(); style != "" {
		b.WriteString(style)
		b.WriteByte('\n')
	}

	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(fld.ClassAttribute()))
	b.WriteString(`" data-component="numeric-input" data-element-id="`)
	b.WriteString(html.EscapeString(c.ElementID()))
	b.WriteString("\">\n")

	if label := strings.TrimSpace(fld.Label); label != "" {
		b.WriteString(`    <label for="fk-`)
		b.WriteString(html.EscapeString(c.ElementID()))
		b.WriteString(`" class="`)
		b.WriteString(html.EscapeString(r.chrome[ClassLabel]))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(label))
		b.WriteString("</label>\n")
	}

	if icon := strings.TrimSpace(fld.Icon); icon != "" {
		// Icon markup is sanitized by the overlay loader before it reaches
		// the field; it is embedded verbatim.
		b.WriteString(`    <span class="`)
		b.WriteString(html.EscapeString(r.chrome[ClassIcon]))
		b.WriteString(`" aria-hidden="true">`)
		b.WriteString(icon)
		b.WriteString("</span>\n")
	}

	b.WriteString("    ")
	r.writeInputElement(&b, c, fld, value)
	b.WriteByte('\n')

	if c.ShowSpinner() {
		r.writeSpinner(&b)
	}

	if help := strings.TrimSpace(fld.Help); help != "" {
		b.WriteString(`    <small class="`)
		b.WriteString(html.EscapeString(r.chrome[ClassHelp]))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(help))
		b.WriteString("</small>\n")
	}

	b.WriteString("</div>\n")
	return b.String(), nil
}

func (r *Renderer) writeInputElement(b *strings.Builder, c *input.NumericInput, fld *field.Field, value string) {
	fc := c.Context()

	b.WriteString(`<input id="fk-`)
	b.WriteString(html.EscapeString(c.ElementID()))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(fld.Name))
	b.WriteString(`" type="text" inputmode="decimal" class="`)
	b.WriteString(html.EscapeString(r.chrome[ClassInput]))
	b.WriteString(`"`)

	if value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	if chars := c.VisibleCharacters(); chars > 0 {
		fmt.Fprintf(b, ` size="%d"`, chars)
	}

	fmt.Fprintf(b, ` data-decimals="%d"`, fc.Decimals)
	b.WriteString(` data-separator="`)
	b.WriteString(html.EscapeString(fc.Separator))
	b.WriteString(`" data-step="`)
	b.WriteString(html.EscapeString(c.Step().String()))
	b.WriteString(`"`)

	if min := c.Min(); min != nil {
		b.WriteString(` data-min="`)
		b.WriteString(html.EscapeString(min.String()))
		b.WriteString(`"`)
	}
	if max := c.Max(); max != nil {
		b.WriteString(` data-max="`)
		b.WriteString(html.EscapeString(max.String()))
		b.WriteString(`"`)
	}

	if c.Disabled() {
		b.WriteString(` disabled`)
	}
	if c.ReadOnly() {
		b.WriteString(` readonly`)
	}
	b.WriteString(`>`)
}

func (r *Renderer) writeSpinner(b *strings.Builder) {
	b.WriteString(`    <div class="`)
	b.WriteString(html.EscapeString(r.chrome[ClassSpinner]))
	b.WriteString("\">\n")
	b.WriteString(`        <button type="button" class="`)
	b.WriteString(html.EscapeString(r.chrome[ClassStepUp]))
	b.WriteString(`" data-step-direction="up" aria-label="Increase">+</button>` + "\n")
	b.WriteString(`        <button type="button" class="`)
	b.WriteString(html.EscapeString(r.chrome[ClassStepDn]))
	b.WriteString(`" data-step-direction="down" aria-label="Decrease">-</button>` + "\n")
	b.WriteString("    </div>\n")
}

// themeStyleBlock derives a :root style block from theme CSS vars so chrome
// classes can reference tokens without a build step.
func (r *Renderer) themeStyleBlock() string {
	if r.theme == nil || len(r.theme.CSSVars) == 0 {
		return ""
	}

	names := make([]string, 0, len(r.theme.CSSVars))
	for name := range r.theme.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("<style>:root{")
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(r.theme.CSSVars[name])
		b.WriteByte(';')
	}
	b.WriteString("}</style>")
	return b.String()
}
