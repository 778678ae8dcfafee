package export

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/goliatone/go-surveymodel/pkg/model"
)

const definitionsPrefix = "#/$defs/"

// JSONSchema describes every type registered with reg under $defs and points
// the document root at root.
func JSONSchema(reg *model.Registry, root *model.Type) (*jsonschema.Schema, error) {
	if reg == nil || root == nil {
		return nil, fmt.Errorf("export: registry and root type are required")
	}
	types, byFamily := definitions(reg)

	defs := make(jsonschema.Definitions, len(types))
	for _, t := range types {
		defs[t.Name()] = jsonTypeSchema(reg, t, byFamily)
	}
	if _, ok := defs[root.Name()]; !ok {
		return nil, fmt.Errorf("export: %s is not registered", root.Name())
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Ref:         definitionsPrefix + root.Name(),
		Definitions: defs,
	}, nil
}

func jsonTypeSchema(reg *model.Registry, t *model.Type, byFamily map[model.Family][]*model.Type) *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	for _, field := range t.Fields() {
		properties.Set(field.External, jsonFieldSchema(reg, field, byFamily))
	}
	return &jsonschema.Schema{
		Type:       "object",
		Title:      t.Name(),
		Properties: properties,
		Required:   required(t),
	}
}

func jsonFieldSchema(reg *model.Registry, field model.Field, byFamily map[model.Family][]*model.Type) *jsonschema.Schema {
	var schema *jsonschema.Schema
	switch field.Type {
	case model.FieldString:
		schema = &jsonschema.Schema{Type: "string"}
		if field.Fixed {
			schema.Const = field.Default
		}
	case model.FieldBoolean:
		schema = &jsonschema.Schema{Type: "boolean"}
	case model.FieldInteger:
		schema = &jsonschema.Schema{Type: "integer"}
	case model.FieldEnum:
		schema = &jsonschema.Schema{Type: "string", Enum: allowed(reg, field)}
	case model.FieldURL:
		schema = &jsonschema.Schema{Type: "string"}
		if field.Required {
			schema.Format = "uri"
		}
	case model.FieldURLList:
		schema = &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string", Format: "uri"}}
	case model.FieldStringList:
		schema = &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string"}}
	case model.FieldIntegerList:
		schema = &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "integer"}}
	case model.FieldList:
		schema = &jsonschema.Schema{Type: "array", Items: jsonShape(field.Items)}
	case model.FieldObject:
		schema = &jsonschema.Schema{Type: "object", AdditionalProperties: jsonShape(field.Values)}
		if keys := allowed(reg, field); keys != nil {
			schema.PropertyNames = &jsonschema.Schema{Enum: keys}
		}
	case model.FieldEntities:
		var refs []*jsonschema.Schema
		for _, t := range byFamily[field.Family] {
			refs = append(refs, &jsonschema.Schema{Ref: definitionsPrefix + t.Name()})
		}
		items := &jsonschema.Schema{}
		if len(refs) == 1 {
			items = refs[0]
		} else if len(refs) > 1 {
			items.AnyOf = refs
		}
		schema = &jsonschema.Schema{Type: "array", Items: items}
	default:
		schema = &jsonschema.Schema{}
	}
	if def, ok := jsonDefault(field); ok {
		schema.Default = def
	}
	return schema
}

func jsonShape(shape model.Shape) *jsonschema.Schema {
	stringMap := func() *jsonschema.Schema {
		return &jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "string"}}
	}
	switch shape {
	case model.ShapeString:
		return &jsonschema.Schema{Type: "string"}
	case model.ShapeObject:
		return &jsonschema.Schema{Type: "object"}
	case model.ShapeStringMap:
		return stringMap()
	case model.ShapeStringOrObject:
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: "string"}, stringMap()}}
	case model.ShapeIntegerOrObject:
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: "integer"}, {Type: "object"}}}
	case model.ShapeIntegerOrString:
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: "integer"}, {Type: "string"}}}
	default:
		return &jsonschema.Schema{}
	}
}
