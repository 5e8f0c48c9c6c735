package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// File is a parsed configuration file.
type File struct {
	Source        string
	Renderer      model.RendererConfig
	Policy        builder.Policy
	Interpolation render.Interpolation
}

// Options returns the builder options encoded in the file.
func (f File) Options() []builder.Option {
	return []builder.Option{
		builder.WithPolicy(f.Policy),
		builder.WithInterpolation(f.Interpolation),
	}
}

type documentFile struct {
	TargetSelector  string                  `json:"targetSelector" yaml:"targetSelector" toml:"targetSelector"`
	ElementSelector string                  `json:"elementSelector" yaml:"elementSelector" toml:"elementSelector"`
	StyleRules      map[string]string       `json:"styleRules" yaml:"styleRules" toml:"styleRules"`
	Styles          map[string]string       `json:"styles" yaml:"styles" toml:"styles"`
	Policy          string                  `json:"policy" yaml:"policy" toml:"policy"`
	Interpolation   string                  `json:"interpolation" yaml:"interpolation" toml:"interpolation"`
	Fields          []model.FieldDescriptor `json:"fields" yaml:"fields" toml:"fields"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses path from fsys.
func LoadFS(fsys fs.FS, path string) (File, error) {
	if fsys == nil {
		return File{}, fmt.Errorf("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a configuration document. Sources ending in .toml are read as
// TOML; anything else as JSON or YAML. source is also used in error messages.
func Parse(data []byte, source string) (File, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return File{}, err
	}
	return normaliseDocument(doc, source)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	if strings.EqualFold(path.Ext(source), ".toml") {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("config: parse %s: invalid TOML: %w", source, err)
		}
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func normaliseDocument(doc documentFile, source string) (File, error) {
	selector := doc.TargetSelector
	if selector == "" {
		selector = doc.ElementSelector
	} else if doc.ElementSelector != "" && doc.ElementSelector != selector {
		return File{}, fmt.Errorf("config: file %s sets both targetSelector %q and elementSelector %q", source, selector, doc.ElementSelector)
	}

	styles := doc.StyleRules
	if len(styles) == 0 {
		styles = doc.Styles
	} else if len(doc.Styles) > 0 {
		return File{}, fmt.Errorf("config: file %s sets both styleRules and styles", source)
	}

	policy, err := builder.ParsePolicy(doc.Policy)
	if err != nil {
		return File{}, fmt.Errorf("config: file %s: %w", source, err)
	}
	interpolation, err := render.ParseInterpolation(doc.Interpolation)
	if err != nil {
		return File{}, fmt.Errorf("config: file %s: %w", source, err)
	}

	for idx, field := range doc.Fields {
		if field.Name == "" {
			return File{}, fmt.Errorf("config: file %s: fields[%d] has no name", source, idx)
		}
	}

	return File{
		Source: source,
		Renderer: model.RendererConfig{
			TargetSelector: selector,
			Fields:         model.CloneFields(doc.Fields),
			StyleRules:     styles,
		},
		Policy:        policy,
		Interpolation: interpolation,
	}, nil
}
