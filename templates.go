package formbuilder

import (
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/render/components"
)

// EmbeddedTemplates exposes the built-in field templates so callers can copy
// or override them (render.WithTemplatesFS) without importing the components
// package directly.
func EmbeddedTemplates() fs.FS {
	return components.TemplatesFS()
}
