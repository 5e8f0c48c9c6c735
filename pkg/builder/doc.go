// Package builder hosts FormRenderer, the component that renders a list of
// field descriptors into a container element, grows that list interactively
// and exports it.
//
// The lifecycle has two states: detached until Initialize resolves the target
// selector, attached afterwards. Fields added while detached are kept and
// rendered by the next Initialize. Initialize is not idempotent: each call
// appends every field again.
//
// Degraded conditions follow the configured Policy. PolicyLenient, the default,
// matches the legacy component: a missing container, an unknown field type or
// an abandoned add are no-ops that are only logged. PolicyStrict returns the
// sentinel errors declared in this package.
package builder
