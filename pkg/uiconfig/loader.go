package uiconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldkit/pkg/field"
)

type document struct {
	Culture string              `yaml:"culture" json:"culture"`
	Fields  map[string]rawField `yaml:"fields" json:"fields"`
}

type rawField struct {
	Label       string     `yaml:"label" json:"label"`
	Help        string     `yaml:"help" json:"help"`
	Icon        string     `yaml:"icon" json:"icon"`
	Class       string     `yaml:"class" json:"class"`
	Column      *rawColumn `yaml:"column" json:"column"`
	Decimals    *int       `yaml:"decimals" json:"decimals"`
	Separator   string     `yaml:"separator" json:"separator"`
	ShowSpinner *bool      `yaml:"showSpinner" json:"showSpinner"`
	Step        string     `yaml:"step" json:"step"`
	Min         string     `yaml:"min" json:"min"`
	Max         string     `yaml:"max" json:"max"`
}

type rawColumn struct {
	Span       int    `yaml:"span" json:"span"`
	Breakpoint string `yaml:"breakpoint" json:"breakpoint"`
}

// LoadFS walks the provided filesystem and parses every JSON/YAML overlay
// file. A nil filesystem yields an empty store. Duplicate field names across
// files are an error so overlays stay order-independent.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uiconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if doc.Culture != "" {
			store.culture = strings.TrimSpace(doc.Culture)
		}

		for name, raw := range doc.Fields {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("uiconfig: file %s defines an empty field name", path)
			}
			if _, exists := store.fields[id]; exists {
				return fmt.Errorf("uiconfig: duplicate field %q (file %s)", id, path)
			}
			store.fields[id] = normalizeField(raw)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("uiconfig: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("uiconfig: parse %s: %w", path, err)
	}
	return doc, nil
}

func normalizeField(raw rawField) FieldConfig {
	cfg := FieldConfig{
		Label:       strings.TrimSpace(raw.Label),
		Help:        strings.TrimSpace(raw.Help),
		Icon:        sanitizeIconMarkup(raw.Icon),
		Class:       strings.TrimSpace(raw.Class),
		Decimals:    raw.Decimals,
		Separator:   strings.TrimSpace(raw.Separator),
		ShowSpinner: raw.ShowSpinner,
		Step:        strings.TrimSpace(raw.Step),
		Min:         strings.TrimSpace(raw.Min),
		Max:         strings.TrimSpace(raw.Max),
	}
	if raw.Column != nil {
		size := field.ColumnSize{
			Span:       raw.Column.Span,
			Breakpoint: field.Breakpoint(strings.TrimSpace(raw.Column.Breakpoint)),
		}
		if size.Valid() {
			cfg.Column = &size
		}
	}
	return cfg
}

func parseDecimal(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
