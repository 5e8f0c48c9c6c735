package components

// Canonical component names registered by NewDefaultRegistry. They match the
// field type tags one to one.
const (
	NameText     = "text"
	NameNumber   = "number"
	NameSelect   = "select"
	NameCheckbox = "checkbox"
)
