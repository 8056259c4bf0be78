package vanilla

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
)

// renderTemplate executes the configured pongo2 template with the component
// state. Template source is parsed on every render; callers that render hot
// paths should keep the built-in markup instead.
func (r *Renderer) renderTemplate(c *input.NumericInput, fld *field.Field, value string) (string, error) {
	tmpl, err := pongo2.FromString(r.templateSrc)
	if err != nil {
		return "", fmt.Errorf("vanilla: parse template: %w", err)
	}

	out, err := tmpl.Execute(r.templateContext(c, fld, value))
	if err != nil {
		return "", fmt.Errorf("vanilla: execute template: %w", err)
	}
	return out, nil
}

// templateContext exposes the variables available to custom templates.
func (r *Renderer) templateContext(c *input.NumericInput, fld *field.Field, value string) pongo2.Context {
	fc := c.Context()

	chrome := make(map[string]string, len(r.chrome))
	for key, class := range r.chrome {
		chrome[string(key)] = class
	}

	ctx := pongo2.Context{
		"classes":   fld.ClassAttribute(),
		"chrome":    chrome,
		"value":     value,
		"elementID": c.ElementID(),
		"name":      fld.Name,
		"label":     fld.Label,
		"help":      fld.Help,
		"icon":      fld.Icon,
		"decimals":  fc.Decimals,
		"separator": fc.Separator,
		"step":      c.Step().String(),
		"disabled":  c.Disabled(),
		"readonly":  c.ReadOnly(),
		"spinner":   c.ShowSpinner(),
	}
	if min := c.Min(); min != nil {
		ctx["min"] = min.String()
	}
	if max := c.Max(); max != nil {
		ctx["max"] = max.String()
	}
	if r.theme != nil {
		ctx["theme"] = map[string]any{
			"name":    r.theme.Theme,
			"variant": r.theme.Variant,
			"tokens":  r.theme.Tokens,
			"cssVars": r.theme.CSSVars,
		}
	}
	return ctx
}
