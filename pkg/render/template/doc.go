// Package template defines the template rendering seam used by field
// components. The pongo subpackage provides the default pongo2 engine.
package template
