// Package output renders report structures for machine consumption.
// Human-readable summaries are printed by the application layer; this
// package only deals in serialization formats.
package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Formatter serializes a value for output.
type Formatter interface {
	Format(v any, pretty bool) ([]byte, error)
}

// JSONFormatter renders JSON, optionally indented.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// YAMLFormatter renders YAML.
type YAMLFormatter struct{}

// Format implements Formatter. YAML output is always indented; pretty
// is accepted for interface symmetry.
func (f *YAMLFormatter) Format(v any, _ bool) ([]byte, error) {
	return yaml.Marshal(v)
}

// ForName returns the formatter for a format name.
func ForName(name string) (Formatter, error) {
	switch name {
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}
