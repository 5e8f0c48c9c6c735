package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Interpolation selects how descriptor strings are placed into field markup.
type Interpolation string

const (
	// InterpolationVerbatim inserts names, labels and options unchanged. Markup
	// inside a label becomes real elements once the field is parsed.
	InterpolationVerbatim Interpolation = "verbatim"
	// InterpolationEscape HTML-escapes every value.
	InterpolationEscape Interpolation = "escape"
	// InterpolationSanitize strips tags with a strict bluemonday policy and
	// escapes what remains.
	InterpolationSanitize Interpolation = "sanitize"
)

// ParseInterpolation maps a config string onto an Interpolation. An empty
// value selects verbatim.
func ParseInterpolation(value string) (Interpolation, error) {
	switch Interpolation(strings.ToLower(strings.TrimSpace(value))) {
	case "", InterpolationVerbatim:
		return InterpolationVerbatim, nil
	case InterpolationEscape:
		return InterpolationEscape, nil
	case InterpolationSanitize:
		return InterpolationSanitize, nil
	default:
		return "", fmt.Errorf("render: unknown interpolation %q", value)
	}
}

// Func returns the string transform for the mode.
func (i Interpolation) Func() func(string) string {
	switch i {
	case InterpolationEscape:
		return html.EscapeString
	case InterpolationSanitize:
		return sanitize
	default:
		return verbatim
	}
}

func verbatim(value string) string {
	return value
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func sanitize(value string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(value)
}
