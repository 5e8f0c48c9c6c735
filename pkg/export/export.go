// Package export serialises a field list for humans and tooling. JSON output
// uses the same keys as the descriptor struct tags, indented by two spaces.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Format selects the serialisation used by Write.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value onto a Format. Empty selects JSON.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", value)
	}
}

// Write serialises fields to w. A nil list is written as an empty array.
func Write(w io.Writer, format Format, fields []model.FieldDescriptor) error {
	if fields == nil {
		fields = []model.FieldDescriptor{}
	}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fields); err != nil {
			return fmt.Errorf("export: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export: close yaml encoder: %w", err)
		}
		return nil
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(fields); err != nil {
			return fmt.Errorf("export: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// Read parses output produced by Write back into descriptors. YAML is a JSON
// superset, so one decoder serves both formats.
func Read(r io.Reader) ([]model.FieldDescriptor, error) {
	var fields []model.FieldDescriptor
	if err := yaml.NewDecoder(r).Decode(&fields); err != nil {
		if err == io.EOF {
			return []model.FieldDescriptor{}, nil
		}
		return nil, fmt.Errorf("export: decode fields: %w", err)
	}
	return fields, nil
}
