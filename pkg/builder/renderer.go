package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/style"
)

// Prompt messages shown by AddField, in the order they are asked.
const (
	PromptFieldName     = "Enter field name:"
	PromptFieldLabel    = "Enter field label:"
	PromptFieldType     = "Enter field type (text, number, select, checkbox, etc.):"
	PromptFieldOptions  = "Enter options, comma-separated (if applicable):"
	PromptFieldRequired = "Is this field required?"
)

// Host is the page a FormRenderer draws into. *dom.Document satisfies it.
type Host interface {
	Query(selector string) (*html.Node, error)
	AppendStyle(css string) *html.Node
}

// FormRenderer owns an ordered field list and keeps the container it renders
// into in sync with it. The list only grows; the container holds one wrapper
// element per rendered descriptor. A FormRenderer is not safe for concurrent
// use.
type FormRenderer struct {
	host       Host
	selector   string
	fields     []model.FieldDescriptor
	styleRules map[string]string
	container  *html.Node

	fieldRenderer *render.FieldRenderer
	interpolation render.Interpolation
	provider      prompt.Provider
	policy        Policy
	exportOut     io.Writer
	exportFormat  export.Format
	logger        logr.Logger
	eagerStyles   bool
}

// New stores the configuration and copies its fields into the owned list. The
// container is not resolved until Initialize.
func New(host Host, cfg model.RendererConfig, options ...Option) (*FormRenderer, error) {
	if host == nil {
		return nil, errors.New("builder: host document is required")
	}

	r := &FormRenderer{
		host:          host,
		selector:      cfg.TargetSelector,
		fields:        model.CloneFields(cfg.Fields),
		styleRules:    cloneStringMap(cfg.StyleRules),
		interpolation: render.InterpolationVerbatim,
		policy:        PolicyLenient,
		exportOut:     os.Stdout,
		exportFormat:  export.FormatJSON,
		logger:        logr.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.fieldRenderer == nil {
		fields, err := render.New(render.WithInterpolation(r.interpolation))
		if err != nil {
			return nil, fmt.Errorf("builder: configure field renderer: %w", err)
		}
		r.fieldRenderer = fields
	}

	if r.policy == PolicyStrict {
		for idx, field := range r.fields {
			if err := field.Validate(); err != nil {
				return nil, fmt.Errorf("%w: fields[%d]: %v", ErrInvalidField, idx, err)
			}
		}
	}

	if r.eagerStyles {
		r.ApplyStyles()
	}
	return r, nil
}

// ApplyStyles appends one style block to the host holding a rule per style
// property, each scoped to the target selector. Calling it again appends
// another block.
func (r *FormRenderer) ApplyStyles() *html.Node {
	sheet := style.Scoped(r.selector, r.styleRules)
	r.logger.V(1).Info("applying style rules", "selector", r.selector, "rules", len(sheet.Rules))
	return r.host.AppendStyle(style.Format(sheet))
}

// Initialize resolves the target container and appends one element per owned
// field, in order. A selector that matches nothing detaches the renderer and
// renders nothing. Calling Initialize again appends every field a second time.
func (r *FormRenderer) Initialize() error {
	container, err := r.host.Query(r.selector)
	r.container = container
	if err != nil {
		return r.degrade(fmt.Errorf("builder: resolve %q: %w", r.selector, err), "target selector invalid")
	}
	if container == nil {
		return r.degrade(fmt.Errorf("%w: %q", ErrContainerNotFound, r.selector), "target container not found")
	}

	if r.policy == PolicyStrict {
		for _, field := range r.fields {
			if !field.Type.Known() {
				r.container = nil
				return fmt.Errorf("%w: %q (field %q)", ErrUnknownFieldType, field.Type, field.Name)
			}
		}
	}

	for _, field := range r.fields {
		if err := r.attach(field); err != nil {
			return err
		}
	}
	r.logger.V(1).Info("form initialized", "selector", r.selector, "fields", len(r.fields))
	return nil
}

// RenderField returns the element for one descriptor without attaching it.
// Unknown types produce an empty wrapper; under PolicyStrict the wrapper comes
// back together with ErrUnknownFieldType.
func (r *FormRenderer) RenderField(field model.FieldDescriptor) (*html.Node, error) {
	node, err := r.fieldRenderer.Render(field)
	if err != nil {
		if errors.Is(err, ErrUnknownFieldType) {
			return node, r.degrade(err, "unknown field type")
		}
		return nil, err
	}
	return node, nil
}

// AddField collects a descriptor from the prompt provider and appends it. The
// provider is asked for a name, a label and a type; options when the type is
// select; and whether the field is required. A blank or cancelled name, label
// or type discards the whole interaction. It reports whether a field was
// added.
func (r *FormRenderer) AddField(ctx context.Context) (bool, error) {
	if r.provider == nil {
		return false, errors.New("builder: prompt provider is not configured")
	}

	var answers [3]string
	for idx, message := range []string{PromptFieldName, PromptFieldLabel, PromptFieldType} {
		value, err := r.provider.Input(ctx, prompt.InputConfig{Message: message})
		if errors.Is(err, prompt.ErrAborted) {
			return false, r.degrade(fmt.Errorf("%w: %s cancelled", ErrFieldAbandoned, message), "add field cancelled")
		}
		if err != nil {
			return false, fmt.Errorf("builder: prompt %q: %w", message, err)
		}
		answers[idx] = value
	}

	name, label, fieldType := answers[0], answers[1], model.FieldType(answers[2])
	if name == "" || label == "" || fieldType == "" {
		return false, r.degrade(fmt.Errorf("%w: name, label and type are required", ErrFieldAbandoned), "add field abandoned")
	}

	field := model.FieldDescriptor{
		Name:  name,
		Label: label,
		Type:  fieldType,
	}

	if fieldType == model.FieldTypeSelect {
		raw, err := r.provider.Input(ctx, prompt.InputConfig{Message: PromptFieldOptions})
		switch {
		case errors.Is(err, prompt.ErrAborted):
			// cancelled: the field keeps no options
		case err != nil:
			return false, fmt.Errorf("builder: prompt options: %w", err)
		default:
			field.Options = strings.Split(raw, ",")
		}
	}

	required, err := r.provider.Confirm(ctx, prompt.ConfirmConfig{Message: PromptFieldRequired})
	if err != nil && !errors.Is(err, prompt.ErrAborted) {
		return false, fmt.Errorf("builder: prompt required: %w", err)
	}
	field.Required = required

	return r.appendField(field)
}

// Append adds a descriptor programmatically and renders it when a container is
// attached. An empty name is never added; under PolicyStrict it is an error, as
// is an unknown type.
func (r *FormRenderer) Append(field model.FieldDescriptor) error {
	_, err := r.appendField(field)
	return err
}

// appendField reports whether field joined the owned list.
func (r *FormRenderer) appendField(field model.FieldDescriptor) (bool, error) {
	field = field.Clone()
	if err := field.Validate(); err != nil {
		return false, r.degrade(fmt.Errorf("%w: %v", ErrInvalidField, err), "field rejected")
	}
	if r.policy == PolicyStrict && !field.Type.Known() {
		return false, fmt.Errorf("%w: %q (field %q)", ErrUnknownFieldType, field.Type, field.Name)
	}

	r.fields = append(r.fields, field)
	r.logger.V(1).Info("field added", "field", field.Name, "type", string(field.Type), "attached", r.container != nil)

	if r.container == nil {
		return true, nil
	}
	return true, r.attach(field)
}

// ExportConfiguration writes the owned field list to the export writer.
func (r *FormRenderer) ExportConfiguration() error {
	return export.Write(r.exportOut, r.exportFormat, r.fields)
}

// Fields returns a copy of the owned field list.
func (r *FormRenderer) Fields() []model.FieldDescriptor {
	return model.CloneFields(r.fields)
}

// Attached reports whether a container was resolved by the last Initialize.
func (r *FormRenderer) Attached() bool {
	return r.container != nil
}

// Container returns the attached container, or nil.
func (r *FormRenderer) Container() *html.Node {
	return r.container
}

// Selector returns the target selector.
func (r *FormRenderer) Selector() string {
	return r.selector
}

// Policy returns the active error policy.
func (r *FormRenderer) Policy() Policy {
	return r.policy
}

func (r *FormRenderer) attach(field model.FieldDescriptor) error {
	node, err := r.fieldRenderer.Render(field)
	if err != nil {
		if !errors.Is(err, ErrUnknownFieldType) || r.policy == PolicyStrict {
			return err
		}
		r.logger.V(1).Info("unknown field type rendered empty", "field", field.Name, "type", string(field.Type))
	}
	r.container.AppendChild(node)
	return nil
}

func (r *FormRenderer) degrade(err error, msg string) error {
	if r.policy == PolicyStrict {
		return err
	}
	r.logger.V(1).Info(msg, "selector", r.selector, "reason", err.Error())
	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
