package builder

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Option configures a FormRenderer.
type Option func(*FormRenderer)

// WithPolicy selects lenient or strict error handling.
func WithPolicy(policy Policy) Option {
	return func(r *FormRenderer) {
		if policy != "" {
			r.policy = policy
		}
	}
}

// WithInterpolation selects how descriptor strings reach the markup. It is
// ignored when WithFieldRenderer supplies a renderer.
func WithInterpolation(mode render.Interpolation) Option {
	return func(r *FormRenderer) {
		if mode != "" {
			r.interpolation = mode
		}
	}
}

// WithFieldRenderer replaces the default field renderer.
func WithFieldRenderer(fields *render.FieldRenderer) Option {
	return func(r *FormRenderer) {
		if fields != nil {
			r.fieldRenderer = fields
		}
	}
}

// WithPromptProvider sets the input provider used by AddField.
func WithPromptProvider(provider prompt.Provider) Option {
	return func(r *FormRenderer) {
		if provider != nil {
			r.provider = provider
		}
	}
}

// WithExportWriter sets where ExportConfiguration writes.
func WithExportWriter(w io.Writer) Option {
	return func(r *FormRenderer) {
		if w != nil {
			r.exportOut = w
		}
	}
}

// WithExportFormat selects the ExportConfiguration serialisation.
func WithExportFormat(format export.Format) Option {
	return func(r *FormRenderer) {
		if format != "" {
			r.exportFormat = format
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger logr.Logger) Option {
	return func(r *FormRenderer) {
		r.logger = logger
	}
}

// WithEagerStyles applies style rules during New, as the legacy component did.
func WithEagerStyles() Option {
	return func(r *FormRenderer) {
		r.eagerStyles = true
	}
}
