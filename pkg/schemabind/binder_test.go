package schemabind

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-fieldkit/pkg/input"
	"github.com/goliatone/go-fieldkit/pkg/numeric"
)

const sampleSpec = `
openapi: "3.0.3"
info:
  title: Catalog
  version: "1.0.0"
paths: {}
components:
  schemas:
    Product:
      type: object
      properties:
        price:
          type: number
          title: Price
          description: Net price per unit
          minimum: 0
          maximum: 100
          multipleOf: 0.25
          x-fieldkit:
            decimals: 2
            culture: de-DE
            showSpinner: true
        stock:
          type: integer
          format: int32
          minimum: 0
        name:
          type: string
`

func loadSampleDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadDocument(context.Background(), []byte(sampleSpec))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

func TestNumericBinding_DecimalProperty(t *testing.T) {
	doc := loadSampleDocument(t)

	binding, err := doc.NumericBinding("Product", "price")
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	if binding.Kind != numeric.KindDecimal {
		t.Fatalf("want decimal kind, got %s", binding.Kind)
	}
	if binding.Label != "Price" || binding.Name != "price" {
		t.Fatalf("metadata mismatch: %+v", binding)
	}
	if binding.Min == nil || binding.Min.String() != "0" {
		t.Fatalf("minimum lost: %v", binding.Min)
	}
	if binding.Max == nil || binding.Max.String() != "100" {
		t.Fatalf("maximum lost: %v", binding.Max)
	}
	if binding.Step == nil || binding.Step.String() != "0.25" {
		t.Fatalf("multipleOf should bind as step: %v", binding.Step)
	}
	if binding.Decimals == nil || *binding.Decimals != 2 {
		t.Fatalf("x-fieldkit decimals lost: %v", binding.Decimals)
	}
	if binding.Culture != "de-DE" {
		t.Fatalf("x-fieldkit culture lost: %q", binding.Culture)
	}
	if binding.ShowSpinner == nil || !*binding.ShowSpinner {
		t.Fatalf("x-fieldkit showSpinner lost")
	}
}

func TestNumericBinding_IntegerProperty(t *testing.T) {
	doc := loadSampleDocument(t)

	binding, err := doc.NumericBinding("Product", "stock")
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if binding.Kind != numeric.KindInt32 {
		t.Fatalf("int32 format should bind KindInt32, got %s", binding.Kind)
	}
	if binding.Step != nil {
		t.Fatalf("no multipleOf should leave step nil")
	}
}

func TestNumericBinding_Errors(t *testing.T) {
	doc := loadSampleDocument(t)

	if _, err := doc.NumericBinding("Missing", "price"); !errors.Is(err, ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound, got %v", err)
	}
	if _, err := doc.NumericBinding("Product", "missing"); !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
	if _, err := doc.NumericBinding("Product", "name"); !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
}

func TestBinding_OptionsDriveComponent(t *testing.T) {
	doc := loadSampleDocument(t)
	binding, err := doc.NumericBinding("Product", "price")
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	c, err := input.New(binding.Kind, binding.Options()...)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}

	if c.ElementID() != "price" {
		t.Fatalf("element id should follow the property name, got %q", c.ElementID())
	}
	if got := c.Context().Separator; got != "," {
		t.Fatalf("de-DE culture should set comma separator, got %q", got)
	}

	if err := c.SetValueFromExternalString("2,50"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	c.StepValue(input.DirectionUp)
	if got, _, _ := c.FormatCurrentValue(); got != "2,75" {
		t.Fatalf("schema-driven step should land on 2,75, got %q", got)
	}
}

func TestBinding_FieldWrapper(t *testing.T) {
	doc := loadSampleDocument(t)
	binding, err := doc.NumericBinding("Product", "price")
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	f := binding.Field()
	if f.Name != "price" || f.Label != "Price" || f.Help == "" {
		t.Fatalf("field wrapper mismatch: %+v", f)
	}
}

func TestLoadDocument_EmptyPayload(t *testing.T) {
	if _, err := LoadDocument(context.Background(), nil); err == nil {
		t.Fatalf("empty payload should fail")
	}
}
