package schemabind

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

const extensionKey = "x-fieldkit"

var (
	// ErrSchemaNotFound reports a missing component schema.
	ErrSchemaNotFound = errors.New("schemabind: schema not found")
	// ErrPropertyNotFound reports a missing property on a located schema.
	ErrPropertyNotFound = errors.New("schemabind: property not found")
	// ErrNotNumeric reports a property whose type cannot bind to a numeric
	// input.
	ErrNotNumeric = errors.New("schemabind: property is not numeric")
)

// Document wraps a loaded OpenAPI specification.
type Document struct {
	spec *openapi3.T
}

// LoadDocument parses an OpenAPI document from raw JSON or YAML bytes.
// External references are not resolved; bindings only need inline schemas.
func LoadDocument(ctx context.Context, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errors.New("schemabind: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schemabind: load document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// NumericBinding locates a property under components.schemas and binds it.
func (d *Document) NumericBinding(schemaName, property string) (Binding, error) {
	if d == nil || d.spec == nil {
		return Binding{}, ErrSchemaNotFound
	}
	if d.spec.Components == nil {
		return Binding{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}

	ref, ok := d.spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return Binding{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}

	propRef, ok := ref.Value.Properties[property]
	if !ok || propRef == nil || propRef.Value == nil {
		return Binding{}, fmt.Errorf("%w: %q.%q", ErrPropertyNotFound, schemaName, property)
	}

	binding, err := BindSchema(propRef.Value)
	if err != nil {
		return Binding{}, err
	}
	binding.Name = property
	return binding, nil
}

// Binding is the normalized numeric configuration extracted from a schema
// property.
type Binding struct {
	Name        string
	Kind        numeric.Kind
	Label       string
	Description string
	Min         *decimal.Decimal
	Max         *decimal.Decimal
	Step        *decimal.Decimal
	Decimals    *int
	Separator   string
	Culture     string
	ShowSpinner *bool
}

// BindSchema converts a single schema into a Binding. Non-numeric schema
// types fail with ErrNotNumeric.
func BindSchema(schema *openapi3.Schema) (Binding, error) {
	if schema == nil {
		return Binding{}, ErrNotNumeric
	}

	kind, err := kindFor(firstType(schema.Type), schema.Format)
	if err != nil {
		return Binding{}, err
	}

	binding := Binding{
		Kind:        kind,
		Label:       strings.TrimSpace(schema.Title),
		Description: strings.TrimSpace(schema.Description),
	}

	if schema.Min != nil {
		d := decimal.NewFromFloat(*schema.Min)
		binding.Min = &d
	}
	if schema.Max != nil {
		d := decimal.NewFromFloat(*schema.Max)
		binding.Max = &d
	}
	if schema.MultipleOf != nil {
		d := decimal.NewFromFloat(*schema.MultipleOf)
		binding.Step = &d
	}

	applyExtension(&binding, schema.Extensions)
	return binding, nil
}

// Options translates the binding into component options. Use the returned
// Kind with input.New.
func (b Binding) Options() []input.Option {
	var opts []input.Option
	if b.Culture != "" {
		fc := numeric.ContextForCulture(b.Culture)
		opts = append(opts, input.WithCulture(fc.Culture))
	}
	if b.Min != nil {
		opts = append(opts, input.WithMin(b.Min))
	}
	if b.Max != nil {
		opts = append(opts, input.WithMax(b.Max))
	}
	if b.Step != nil {
		opts = append(opts, input.WithStep(*b.Step))
	}
	if b.Decimals != nil {
		opts = append(opts, input.WithDecimals(*b.Decimals))
	}
	if b.Separator != "" {
		opts = append(opts, input.WithDecimalsSeparator(b.Separator))
	}
	if b.ShowSpinner != nil {
		opts = append(opts, input.WithShowSpinner(*b.ShowSpinner))
	}
	if b.Name != "" {
		opts = append(opts, input.WithElementID(b.Name))
	}
	return opts
}

// Field builds the layout wrapper matching the bound property.
func (b Binding) Field() *field.Field {
	return &field.Field{
		Name:  b.Name,
		Label: b.Label,
		Help:  b.Description,
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func kindFor(schemaType, format string) (numeric.Kind, error) {
	switch schemaType {
	case "integer":
		switch format {
		case "int8":
			return numeric.KindInt8, nil
		case "int16":
			return numeric.KindInt16, nil
		case "int32", "":
			return numeric.KindInt32, nil
		case "int64":
			return numeric.KindInt64, nil
		case "uint8":
			return numeric.KindUint8, nil
		case "uint16":
			return numeric.KindUint16, nil
		case "uint32":
			return numeric.KindUint32, nil
		case "uint64":
			return numeric.KindUint64, nil
		default:
			return numeric.KindInt64, nil
		}
	case "number":
		switch format {
		case "float":
			return numeric.KindFloat32, nil
		case "double":
			return numeric.KindFloat64, nil
		default:
			return numeric.KindDecimal, nil
		}
	default:
		return numeric.KindInvalid, fmt.Errorf("%w: type %q", ErrNotNumeric, schemaType)
	}
}

func applyExtension(binding *Binding, extensions map[string]any) {
	raw, ok := extensions[extensionKey]
	if !ok {
		return
	}
	ext, ok := raw.(map[string]any)
	if !ok {
		return
	}

	if v, ok := toInt(ext["decimals"]); ok {
		binding.Decimals = &v
	}
	if v, ok := ext["separator"].(string); ok && strings.TrimSpace(v) != "" {
		binding.Separator = strings.TrimSpace(v)
	}
	if v, ok := ext["culture"].(string); ok && strings.TrimSpace(v) != "" {
		binding.Culture = strings.TrimSpace(v)
	}
	if v, ok := ext["showSpinner"].(bool); ok {
		binding.ShowSpinner = &v
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
