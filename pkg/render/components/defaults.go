package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const templatePrefix = "templates/"

// NewDefaultRegistry returns a registry with the four built-in controls.
// Text and number share the input template; the descriptor type becomes the
// input's type attribute.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameText, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "input.tpl"),
	})
	registry.MustRegister(NameNumber, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "input.tpl"),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "select.tpl"),
	})
	registry.MustRegister(NameCheckbox, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "checkbox.tpl"),
	})

	return registry
}

func templateComponentRenderer(templateName string) Renderer {
	return func(buf *bytes.Buffer, field model.FieldDescriptor, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		rendered, err := data.Template.RenderTemplate(templateName, payload(field, data.Interpolate))
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", templateName, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func payload(field model.FieldDescriptor, interpolate func(string) string) map[string]any {
	if interpolate == nil {
		interpolate = func(value string) string { return value }
	}
	options := make([]string, len(field.Options))
	for idx, option := range field.Options {
		options[idx] = interpolate(option)
	}
	return map[string]any{
		"name":     interpolate(field.Name),
		"label":    interpolate(field.Label),
		"type":     interpolate(string(field.Type)),
		"options":  options,
		"required": field.Required,
	}
}
