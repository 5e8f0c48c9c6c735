// Package openapi seeds form field descriptors from an OpenAPI 3 operation.
//
// The request body schema of the selected operation is flattened into one
// descriptor per top-level property, sorted by property name:
//
//	string            -> text
//	integer, number   -> number
//	boolean           -> checkbox
//	any enum          -> select (enum values become options)
//
// Object and array properties are skipped, as are readOnly ones. The
// x-formbuilder-type and x-formbuilder-label schema extensions override the
// derived type and label.
package openapi
