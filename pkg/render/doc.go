// Package render produces the element for a single field descriptor. Markup
// comes from the component registry (pongo2 templates by default) and is
// parsed as an HTML fragment into a wrapper div, the same way assigning
// innerHTML would, so the interpolation mode decides whether descriptor text
// can introduce elements of its own.
package render
