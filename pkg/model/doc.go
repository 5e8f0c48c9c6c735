// Package model defines the field descriptors and renderer configuration shared
// by the renderer, exporters and config loaders. Struct tags keep the JSON
// export keys (name, label, type, options, required) stable so the export
// output can be read back into the same types.
package model
