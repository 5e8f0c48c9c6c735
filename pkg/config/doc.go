// Package config loads form renderer configuration from JSON or YAML files.
//
// A configuration file carries the RendererConfig (target selector, ordered
// fields, style rules) together with the renderer's error policy and
// interpolation mode:
//
//	targetSelector: "#form"
//	styleRules: { color: red }
//	policy: strict
//	interpolation: escape
//	fields:
//	  - { name: age, label: Age, type: number, required: true }
//
// Files ending in .toml are decoded as TOML with the same keys.
//
// The legacy keys elementSelector and styles are accepted in place of
// targetSelector and styleRules.
package config
