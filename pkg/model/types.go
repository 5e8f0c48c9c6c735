package model

import (
	"errors"
	"slices"
)

// FieldType selects the control rendered for a descriptor. Values outside the
// constants below are accepted and kept in the field list but render nothing.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
)

// Known reports whether the type has a built-in control.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeSelect, FieldTypeCheckbox:
		return true
	default:
		return false
	}
}

// FieldDescriptor is the declarative unit describing one form control.
// Options is only meaningful for select fields; a nil slice means the field
// has no options at all and is omitted from exports.
type FieldDescriptor struct {
	Name     string    `json:"name" yaml:"name" toml:"name"`
	Label    string    `json:"label" yaml:"label" toml:"label"`
	Type     FieldType `json:"type" yaml:"type" toml:"type"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Required bool      `json:"required" yaml:"required" toml:"required"`
}

var errFieldNameMissing = errors.New("model: field name is required")

// Validate checks the invariants that apply once a field is added to a
// renderer. Only an empty name is rejected; whitespace is a valid name and
// unknown types are not a validation failure.
func (f FieldDescriptor) Validate() error {
	if f.Name == "" {
		return errFieldNameMissing
	}
	return nil
}

// Clone returns a copy that does not share the options backing array.
func (f FieldDescriptor) Clone() FieldDescriptor {
	f.Options = slices.Clone(f.Options)
	return f
}

// RendererConfig is the construction-time input of a form renderer. The zero
// value is valid: an empty selector, no fields and no style rules.
type RendererConfig struct {
	TargetSelector string            `json:"targetSelector" yaml:"targetSelector"`
	Fields         []FieldDescriptor `json:"fields" yaml:"fields"`
	StyleRules     map[string]string `json:"styleRules,omitempty" yaml:"styleRules,omitempty"`
}

// CloneFields copies a descriptor list so callers cannot mutate a renderer's
// owned state through the slice they passed in.
func CloneFields(fields []FieldDescriptor) []FieldDescriptor {
	if len(fields) == 0 {
		return []FieldDescriptor{}
	}
	out := make([]FieldDescriptor, len(fields))
	for idx, field := range fields {
		out[idx] = field.Clone()
	}
	return out
}
