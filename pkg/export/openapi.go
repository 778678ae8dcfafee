package export

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-surveymodel/pkg/model"
)

const componentsPrefix = "#/components/schemas/"

// OpenAPI returns a document whose components carry one schema per type
// registered with reg. Paths are left empty for callers to fill in.
func OpenAPI(reg *model.Registry, info *openapi3.Info) (*openapi3.T, error) {
	if reg == nil {
		return nil, fmt.Errorf("export: registry is required")
	}
	if info == nil {
		info = &openapi3.Info{Title: "Survey model", Version: "1.0.0"}
	}
	types, byFamily := definitions(reg)

	// Allocate every schema first so recursive element lists can point at
	// schemas that are still being filled.
	values := make(map[*model.Type]*openapi3.Schema, len(types))
	for _, t := range types {
		values[t] = &openapi3.Schema{}
	}
	ref := func(t *model.Type) *openapi3.SchemaRef {
		return openapi3.NewSchemaRef(componentsPrefix+t.Name(), values[t])
	}

	schemas := make(openapi3.Schemas, len(types))
	for _, t := range types {
		schema := values[t]
		schema.Type = &openapi3.Types{openapi3.TypeObject}
		schema.Title = t.Name()
		schema.Properties = make(openapi3.Schemas, len(t.Fields()))
		schema.Required = required(t)
		schema.Extensions = map[string]any{"x-lineage": t.Lineage()}
		for _, field := range t.Fields() {
			schema.Properties[field.External] = openapi3.NewSchemaRef("", openapiFieldSchema(reg, field, byFamily, ref))
		}
		schemas[t.Name()] = openapi3.NewSchemaRef("", schema)
	}

	return &openapi3.T{
		OpenAPI:    "3.0.3",
		Info:       info,
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}, nil
}

func openapiFieldSchema(reg *model.Registry, field model.Field, byFamily map[model.Family][]*model.Type, ref func(*model.Type) *openapi3.SchemaRef) *openapi3.Schema {
	var schema *openapi3.Schema
	switch field.Type {
	case model.FieldString:
		schema = openapi3.NewStringSchema()
		if field.Fixed {
			schema.Enum = []any{field.Default}
		}
	case model.FieldBoolean:
		schema = openapi3.NewBoolSchema()
	case model.FieldInteger:
		schema = openapi3.NewIntegerSchema()
	case model.FieldEnum:
		schema = openapi3.NewStringSchema()
		schema.Enum = allowed(reg, field)
	case model.FieldURL:
		schema = openapi3.NewStringSchema()
		if field.Required {
			schema.Format = "uri"
		}
	case model.FieldURLList:
		item := openapi3.NewStringSchema()
		item.Format = "uri"
		schema = openapi3.NewArraySchema().WithItems(item)
	case model.FieldStringList:
		schema = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case model.FieldIntegerList:
		schema = openapi3.NewArraySchema().WithItems(openapi3.NewIntegerSchema())
	case model.FieldList:
		schema = openapi3.NewArraySchema().WithItems(openapiShape(field.Items))
	case model.FieldObject:
		schema = openapi3.NewObjectSchema()
		values := openapi3.NewSchemaRef("", openapiShape(field.Values))
		if keys := allowed(reg, field); keys != nil {
			for _, key := range keys {
				schema.Properties[key.(string)] = values
			}
			schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
		} else {
			schema.AdditionalProperties = openapi3.AdditionalProperties{Schema: values}
		}
	case model.FieldEntities:
		items := &openapi3.Schema{}
		for _, t := range byFamily[field.Family] {
			items.AnyOf = append(items.AnyOf, ref(t))
		}
		schema = openapi3.NewArraySchema()
		schema.Items = openapi3.NewSchemaRef("", items)
	default:
		schema = &openapi3.Schema{}
	}
	if def, ok := jsonDefault(field); ok {
		schema.Default = def
	}
	return schema
}

func openapiShape(shape model.Shape) *openapi3.Schema {
	stringMap := func() *openapi3.Schema {
		schema := openapi3.NewObjectSchema()
		schema.AdditionalProperties = openapi3.AdditionalProperties{Schema: openapi3.NewSchemaRef("", openapi3.NewStringSchema())}
		return schema
	}
	anyOf := func(schemas ...*openapi3.Schema) *openapi3.Schema {
		out := &openapi3.Schema{}
		for _, schema := range schemas {
			out.AnyOf = append(out.AnyOf, openapi3.NewSchemaRef("", schema))
		}
		return out
	}
	switch shape {
	case model.ShapeString:
		return openapi3.NewStringSchema()
	case model.ShapeObject:
		return openapi3.NewObjectSchema()
	case model.ShapeStringMap:
		return stringMap()
	case model.ShapeStringOrObject:
		return anyOf(openapi3.NewStringSchema(), stringMap())
	case model.ShapeIntegerOrObject:
		return anyOf(openapi3.NewIntegerSchema(), openapi3.NewObjectSchema())
	case model.ShapeIntegerOrString:
		return anyOf(openapi3.NewIntegerSchema(), openapi3.NewStringSchema())
	default:
		return &openapi3.Schema{}
	}
}
