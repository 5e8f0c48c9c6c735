package render

import "errors"

// ErrUnknownFieldType is returned alongside an empty wrapper when a descriptor
// type has no registered component.
var ErrUnknownFieldType = errors.New("render: unknown field type")
