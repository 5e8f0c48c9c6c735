package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrOperationNotFound is returned when no operation matches the requested id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no object request body.
	ErrNoRequestBody = errors.New("openapi: operation has no object request body")
)

const (
	typeExtensionKey  = "x-formbuilder-type"
	labelExtensionKey = "x-formbuilder-label"
)

var preferredMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// FieldsFromFS reads an OpenAPI document from fsys and derives the fields of
// operationID.
func FieldsFromFS(ctx context.Context, fsys fs.FS, name, operationID string) ([]model.FieldDescriptor, error) {
	if fsys == nil {
		return nil, errors.New("openapi: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("openapi: document path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return FieldsFromOperation(ctx, data, operationID)
}

// FieldsFromOperation parses an OpenAPI document and derives the fields of
// operationID. Operations without an operationId are addressed as
// "<method>:<path>", lower-case method.
func FieldsFromOperation(ctx context.Context, data []byte, operationID string) ([]model.FieldDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}
	return fieldsFromSchema(schema), nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			if id == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}

	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldsFromSchema(schema *openapi3.Schema) []model.FieldDescriptor {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.FieldDescriptor, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil || ref.Value.ReadOnly {
			continue
		}
		field, ok := fieldFromProperty(name, ref.Value)
		if !ok {
			continue
		}
		field.Required = required[name]
		fields = append(fields, field)
	}
	return fields
}

func fieldFromProperty(name string, prop *openapi3.Schema) (model.FieldDescriptor, bool) {
	field := model.FieldDescriptor{
		Name:  name,
		Label: name,
	}
	if prop.Title != "" {
		field.Label = prop.Title
	}
	if label, ok := stringExtension(prop.Extensions, labelExtensionKey); ok {
		field.Label = label
	}

	if len(prop.Enum) > 0 {
		field.Type = model.FieldTypeSelect
		field.Options = make([]string, 0, len(prop.Enum))
		for _, value := range prop.Enum {
			field.Options = append(field.Options, fmt.Sprint(value))
		}
	} else if fieldType, ok := fieldTypeFor(prop.Type); ok {
		field.Type = fieldType
	}

	if override, ok := stringExtension(prop.Extensions, typeExtensionKey); ok {
		field.Type = model.FieldType(override)
	}
	if field.Type == "" {
		return model.FieldDescriptor{}, false
	}
	return field, true
}

func fieldTypeFor(types *openapi3.Types) (model.FieldType, bool) {
	if types == nil {
		return "", false
	}
	for _, value := range types.Slice() {
		switch value {
		case openapi3.TypeString:
			return model.FieldTypeText, true
		case openapi3.TypeInteger, openapi3.TypeNumber:
			return model.FieldTypeNumber, true
		case openapi3.TypeBoolean:
			return model.FieldTypeCheckbox, true
		}
	}
	return "", false
}

func stringExtension(extensions map[string]any, key string) (string, bool) {
	raw, ok := extensions[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}
