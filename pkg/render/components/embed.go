package components

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in component templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
