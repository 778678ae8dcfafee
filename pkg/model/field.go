package model

import "github.com/goliatone/go-surveymodel/pkg/constraints"

// FieldType enumerates the value shapes a declared field accepts.
type FieldType string

const (
	FieldString      FieldType = "string"
	FieldBoolean     FieldType = "boolean"
	FieldInteger     FieldType = "integer"
	FieldEnum        FieldType = "enum"
	FieldURL         FieldType = "url"
	FieldURLList     FieldType = "url-list"
	FieldStringList  FieldType = "string-list"
	FieldIntegerList FieldType = "integer-list"
	FieldList        FieldType = "list"
	FieldObject      FieldType = "object"
	FieldAny         FieldType = "any"
	FieldEntities    FieldType = "entities"
)

// Shape constrains the items of a FieldList or the values of a FieldObject.
type Shape string

const (
	ShapeAny             Shape = "any"
	ShapeString          Shape = "string"
	ShapeObject          Shape = "object"
	ShapeStringMap       Shape = "string-map"
	ShapeStringOrObject  Shape = "string-or-object"
	ShapeIntegerOrObject Shape = "integer-or-object"
	ShapeIntegerOrString Shape = "integer-or-string"
)

// Field declares a single slot of an entity type. Name is the internal
// identifier; External is derived from it when left empty.
type Field struct {
	Name     string
	External string
	Type     FieldType
	Default  any
	Required bool
	// Fixed marks a discriminator: the only accepted value is Default.
	Fixed bool
	// Constraint binds enum values (or object keys) to an allowed-value set.
	Constraint constraints.Tag
	Items      Shape
	Values     Shape
	Family     Family
	// HTML flags string fields carrying markup.
	HTML bool
}

// IsList reports whether the field holds an ordered sequence.
func (f Field) IsList() bool {
	switch f.Type {
	case FieldURLList, FieldStringList, FieldIntegerList, FieldList, FieldEntities:
		return true
	default:
		return false
	}
}

// AsRequired drops the default and marks the field mandatory.
func (f Field) AsRequired() Field {
	f.Required = true
	f.Default = nil
	return f
}

// KeysIn constrains the keys of an object field to the values of tag.
func (f Field) KeysIn(tag constraints.Tag) Field {
	f.Constraint = tag
	return f
}

// Discriminator declares the fixed kind of a variant.
func Discriminator(kind string) Field {
	return Field{Name: "kind", Type: FieldString, Default: kind, Fixed: true}
}

// RenderAs declares the fixed renderer hint of a variant that shares its
// kind with another one.
func RenderAs(value string) Field {
	return Field{Name: "render_as", Type: FieldString, Default: value, Fixed: true}
}

func String(name, def string) Field {
	return Field{Name: name, Type: FieldString, Default: def}
}

// HTML declares a markup-bearing string field.
func HTML(name, def string) Field {
	return Field{Name: name, Type: FieldString, Default: def, HTML: true}
}

func Bool(name string, def bool) Field {
	return Field{Name: name, Type: FieldBoolean, Default: def}
}

func Int(name string, def int) Field {
	return Field{Name: name, Type: FieldInteger, Default: def}
}

func Enum(name string, tag constraints.Tag, def string) Field {
	return Field{Name: name, Type: FieldEnum, Default: def, Constraint: tag}
}

func URL(name, def string) Field {
	return Field{Name: name, Type: FieldURL, Default: def}
}

func URLs(name string, def ...string) Field {
	return Field{Name: name, Type: FieldURLList, Default: append([]string{}, def...)}
}

func Strings(name string, def ...string) Field {
	return Field{Name: name, Type: FieldStringList, Default: append([]string{}, def...)}
}

func Ints(name string, def ...int) Field {
	return Field{Name: name, Type: FieldIntegerList, Default: append([]int{}, def...)}
}

// List declares a list of raw JSON values whose items must match shape.
func List(name string, items Shape, def ...any) Field {
	return Field{Name: name, Type: FieldList, Items: items, Default: append([]any{}, def...)}
}

// Object declares a raw JSON object whose values must match shape.
func Object(name string, values Shape) Field {
	return Field{Name: name, Type: FieldObject, Values: values, Default: map[string]any{}}
}

// Any declares a field accepting any JSON value.
func Any(name string, def any) Field {
	return Field{Name: name, Type: FieldAny, Default: def}
}

// Entities declares an ordered list of nested entities of family.
func Entities(name string, family Family) Field {
	return Field{Name: name, Type: FieldEntities, Family: family, Default: []*Entity{}}
}
