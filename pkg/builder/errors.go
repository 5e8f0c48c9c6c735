package builder

import (
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/dom"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Sentinel errors surfaced under PolicyStrict. PolicyLenient logs the same
// conditions and returns nil.
var (
	ErrContainerNotFound = errors.New("builder: target container not found")
	ErrInvalidSelector   = dom.ErrInvalidSelector
	ErrUnknownFieldType  = render.ErrUnknownFieldType
	ErrFieldAbandoned    = errors.New("builder: add field abandoned")
	ErrInvalidField      = errors.New("builder: invalid field")
)
