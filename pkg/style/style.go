// Package style turns a renderer's style rules into a stylesheet scoped to the
// target selector.
package style

import (
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
)

// Scoped builds one qualified rule per (property, value) pair, each applying to
// selector. Properties are emitted in sorted order so the output is stable.
// An empty rule set yields an empty stylesheet.
func Scoped(selector string, rules map[string]string) *css.Stylesheet {
	sheet := css.NewStylesheet()
	if len(rules) == 0 {
		return sheet
	}

	properties := make([]string, 0, len(rules))
	for property := range rules {
		properties = append(properties, property)
	}
	sort.Strings(properties)

	for _, property := range properties {
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = selector
		rule.Selectors = []string{selector}

		decl := css.NewDeclaration()
		decl.Property = property
		decl.Value = rules[property]
		rule.Declarations = append(rule.Declarations, decl)

		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet
}

// Format renders each rule on its own line as `<selector> { <property>: <value>; }`.
func Format(sheet *css.Stylesheet) string {
	if sheet == nil || len(sheet.Rules) == 0 {
		return ""
	}
	lines := make([]string, 0, len(sheet.Rules))
	for _, rule := range sheet.Rules {
		lines = append(lines, formatRule(rule))
	}
	return strings.Join(lines, "\n")
}

func formatRule(rule *css.Rule) string {
	var builder strings.Builder
	builder.WriteString(strings.Join(rule.Selectors, ", "))
	builder.WriteString(" {")
	for _, decl := range rule.Declarations {
		builder.WriteByte(' ')
		builder.WriteString(decl.Property)
		builder.WriteString(": ")
		builder.WriteString(decl.Value)
		if decl.Important {
			builder.WriteString(" !important")
		}
		builder.WriteByte(';')
	}
	builder.WriteString(" }")
	return builder.String()
}
