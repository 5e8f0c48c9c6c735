package builder

import (
	"fmt"
	"strings"
)

// Policy decides whether degraded conditions (missing container, unknown field
// type, abandoned add) are reported as errors.
type Policy string

const (
	// PolicyLenient treats degraded conditions as logged no-ops.
	PolicyLenient Policy = "lenient"
	// PolicyStrict returns the matching sentinel error.
	PolicyStrict Policy = "strict"
)

// ParsePolicy maps a config value onto a Policy. Empty selects lenient.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("builder: unknown policy %q", value)
	}
}
