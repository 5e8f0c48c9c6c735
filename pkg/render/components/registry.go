package components

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Renderer writes the inner markup for one field into buf.
type Renderer func(buf *bytes.Buffer, field model.FieldDescriptor, data ComponentData) error

// ComponentData carries helpers component renderers need. Interpolate is
// applied to every descriptor string before it reaches the markup.
type ComponentData struct {
	Template    rendertemplate.TemplateRenderer
	Interpolate func(string) string
}

// Descriptor bundles a component name with its renderer.
type Descriptor struct {
	Name     string
	Renderer Renderer
}

// Registry maps field type tags to component descriptors. Lookups are exact:
// "Text" or " text" do not resolve to the text component.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Clone returns a copy that can be mutated independently.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.components {
		cloned.components[name] = descriptor
	}
	return cloned
}

// Register associates a descriptor with name, replacing any existing entry.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[name]
	return descriptor, ok
}

// Names returns the registered component names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
