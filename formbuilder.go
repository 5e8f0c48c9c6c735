// Package formbuilder renders data-driven forms into HTML host pages.
//
// A form is described by a model.RendererConfig: a target selector, an
// ordered list of field descriptors and optional style rules. The builder
// package owns the field list and keeps the target container in sync with it;
// this package wraps the common one-shot case:
//
//	out, err := formbuilder.RenderHTML(formbuilder.DefaultPage, model.RendererConfig{
//		TargetSelector: "#form",
//		Fields: []model.FieldDescriptor{
//			{Name: "age", Label: "Age", Type: model.FieldTypeNumber, Required: true},
//		},
//	})
package formbuilder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/dom"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// DefaultPage is a blank host page with a single #form container.
const DefaultPage = `<!DOCTYPE html><html><head></head><body><div id="form"></div></body></html>`

// RenderHTML parses page, applies the style rules, renders every field into
// the target container and returns the resulting document. Under the default
// lenient policy a missing container yields the page unchanged apart from the
// style block.
func RenderHTML(page string, cfg model.RendererConfig, options ...builder.Option) (string, error) {
	doc, err := dom.ParseString(page)
	if err != nil {
		return "", fmt.Errorf("formbuilder: parse page: %w", err)
	}

	r, err := builder.New(doc, cfg, options...)
	if err != nil {
		return "", err
	}
	r.ApplyStyles()
	if err := r.Initialize(); err != nil {
		return "", err
	}
	return doc.String(), nil
}
