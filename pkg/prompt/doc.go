// Package prompt abstracts the blocking input used to collect a new field.
// SurveyProvider drives a real terminal; Scripted and Funcs let tests and
// embedders supply answers without one.
package prompt
