// Command fieldkit-tui binds a numeric input from an OpenAPI schema property
// and drives it interactively in the terminal.
//
// Usage:
//
//	fieldkit-tui -spec api.yaml -schema Product -property price
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/input"
	"github.com/goliatone/go-fieldkit/pkg/renderers/tui"
	"github.com/goliatone/go-fieldkit/pkg/schemabind"
)

func main() {
	specPath := flag.String("spec", "", "path to an OpenAPI document (json or yaml)")
	schemaName := flag.String("schema", "", "component schema name")
	property := flag.String("property", "", "numeric property to bind")
	flag.Parse()

	if *specPath == "" || *schemaName == "" || *property == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *specPath, *schemaName, *property); err != nil {
		fmt.Fprintln(os.Stderr, "fieldkit-tui:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, specPath, schemaName, property string) error {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("read spec: %w", err)
	}

	doc, err := schemabind.LoadDocument(ctx, data)
	if err != nil {
		return err
	}

	binding, err := doc.NumericBinding(schemaName, property)
	if err != nil {
		return err
	}

	component, err := input.New(binding.Kind, binding.Options()...)
	if err != nil {
		return err
	}

	wrapper := binding.Field()
	if wrapper.Label == "" {
		wrapper.Label = property
	}
	wrapper.ColumnSize = &field.ColumnSize{Span: 6}

	session := tui.NewSession()
	if err := session.Run(ctx, component, wrapper); err != nil {
		return err
	}

	if value, ok, err := component.FormatCurrentValue(); err != nil {
		return err
	} else if ok {
		fmt.Printf("%s = %s\n", property, value)
	} else {
		fmt.Printf("%s left unset\n", property)
	}
	return nil
}
