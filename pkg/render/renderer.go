package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/dom"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render/components"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/pongo"
)

// WrapperClass marks every element produced by FieldRenderer.Render.
const WrapperClass = "form-field"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	interpolation    Interpolation
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry replaces the default component registry.
func WithRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithInterpolation selects how descriptor strings reach the markup.
func WithInterpolation(mode Interpolation) Option {
	return func(cfg *config) {
		if mode != "" {
			cfg.interpolation = mode
		}
	}
}

// FieldRenderer turns field descriptors into wrapper elements.
type FieldRenderer struct {
	templates     rendertemplate.TemplateRenderer
	registry      *components.Registry
	interpolation Interpolation
}

// New constructs a FieldRenderer applying any provided options.
func New(options ...Option) (*FieldRenderer, error) {
	cfg := config{
		templateFS:    components.TemplatesFS(),
		interpolation: InterpolationVerbatim,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = components.TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &FieldRenderer{
		templates:     renderer,
		registry:      cfg.registry,
		interpolation: cfg.interpolation,
	}, nil
}

// Interpolation reports the active interpolation mode.
func (r *FieldRenderer) Interpolation() Interpolation {
	return r.interpolation
}

// Markup returns the inner markup for field. Unknown types yield an empty
// string and ErrUnknownFieldType.
func (r *FieldRenderer) Markup(field model.FieldDescriptor) (string, error) {
	descriptor, ok := r.registry.Descriptor(string(field.Type))
	if !ok {
		return "", fmt.Errorf("%w: %q (field %q)", ErrUnknownFieldType, field.Type, field.Name)
	}

	data := components.ComponentData{
		Template:    r.templates,
		Interpolate: r.interpolation.Func(),
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, field, data); err != nil {
		return "", fmt.Errorf("render: field %q: %w", field.Name, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Render builds a detached <div class="form-field"> holding the parsed field
// markup. For unknown types the wrapper is still returned, empty, together
// with ErrUnknownFieldType.
func (r *FieldRenderer) Render(field model.FieldDescriptor) (*html.Node, error) {
	wrapper := dom.NewElement("div", html.Attribute{Key: "class", Val: WrapperClass})

	markup, err := r.Markup(field)
	if err != nil {
		if errors.Is(err, ErrUnknownFieldType) {
			return wrapper, err
		}
		return nil, err
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), wrapper)
	if err != nil {
		return nil, fmt.Errorf("render: parse markup for field %q: %w", field.Name, err)
	}
	for _, node := range nodes {
		wrapper.AppendChild(node)
	}
	return wrapper, nil
}
