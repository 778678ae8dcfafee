package model

import (
	"fmt"

	"github.com/goliatone/go-surveymodel/pkg/naming"
)

// Family groups the types that may stand in for one another inside a nested
// entity list. Element lists accept any question or block variant.
type Family string

const (
	FamilyElement   Family = "element"
	FamilyPage      Family = "page"
	FamilySurvey    Family = "survey"
	FamilyValidator Family = "validator"
)

// Range declares lower <= value <= upper over integer fields. Value may be
// empty, in which case only lower <= upper is enforced.
type Range struct {
	Lower string
	Value string
	Upper string
}

func (r Range) names() []string {
	if r.Value == "" {
		return []string{r.Lower, r.Upper}
	}
	return []string{r.Lower, r.Value, r.Upper}
}

// Type is the flattened field table of one entity variant. Tables are built
// once when the type is declared: a child starts from its parent's table and
// each of its own declarations either appends a new slot or replaces the
// inherited slot of the same name in place.
type Type struct {
	name     string
	family   Family
	parent   *Type
	fields   []Field
	index    map[string]int
	external map[string]int
	ranges   []Range
	registry *Registry
}

// NewType declares a root type.
func NewType(name string, family Family, fields ...Field) *Type {
	t := &Type{
		name:     name,
		family:   family,
		index:    make(map[string]int, len(fields)),
		external: make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		t.declare(field)
	}
	return t
}

// Extend declares a child type inheriting every field and range of t.
func (t *Type) Extend(name string, fields ...Field) *Type {
	child := &Type{
		name:     name,
		family:   t.family,
		parent:   t,
		fields:   append([]Field(nil), t.fields...),
		index:    make(map[string]int, len(t.fields)+len(fields)),
		external: make(map[string]int, len(t.fields)+len(fields)),
		ranges:   append([]Range(nil), t.ranges...),
	}
	for i, field := range child.fields {
		child.index[field.Name] = i
		child.external[field.External] = i
	}
	for _, field := range fields {
		child.declare(field)
	}
	return child
}

// WithRange adds a range check. It panics when a named field is missing or
// not an integer, since that is a declaration mistake.
func (t *Type) WithRange(lower, value, upper string) *Type {
	r := Range{Lower: lower, Value: value, Upper: upper}
	for _, name := range r.names() {
		field, ok := t.Field(name)
		if !ok || field.Type != FieldInteger {
			panic(fmt.Sprintf("model: %s range references non-integer field %q", t.name, name))
		}
	}
	t.ranges = append(t.ranges, r)
	return t
}

func (t *Type) declare(field Field) {
	if field.Name == "" {
		panic(fmt.Sprintf("model: %s declares a field without a name", t.name))
	}
	if field.External == "" {
		field.External = naming.External(field.Name)
	}
	if !field.Required {
		def, err := normalizeDefault(field)
		if err != nil {
			panic(fmt.Sprintf("model: %s.%s invalid default: %v", t.name, field.Name, err))
		}
		field.Default = def
	}

	if slot, ok := t.index[field.Name]; ok {
		delete(t.external, t.fields[slot].External)
		t.fields[slot] = field
		t.external[field.External] = slot
		return
	}
	t.fields = append(t.fields, field)
	t.index[field.Name] = len(t.fields) - 1
	t.external[field.External] = len(t.fields) - 1
}

// Name returns the variant name.
func (t *Type) Name() string { return t.name }

// Family returns the containment family.
func (t *Type) Family() Family { return t.family }

// Parent returns the type t was extended from, or nil for roots.
func (t *Type) Parent() *Type { return t.parent }

// Registry returns the first registry t was registered with.
func (t *Type) Registry() *Registry { return t.registry }

// Kind returns the discriminator of the variant, or "" when the type has no
// fixed kind (pages, surveys, abstract shapes).
func (t *Type) Kind() string {
	field, ok := t.Field("kind")
	if !ok || !field.Fixed {
		return ""
	}
	kind, _ := field.Default.(string)
	return kind
}

// Fields returns the flattened table in declaration order.
func (t *Type) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// Field looks up a declaration by internal name.
func (t *Type) Field(name string) (Field, bool) {
	slot, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[slot], true
}

// FieldByExternal looks up a declaration by wire name.
func (t *Type) FieldByExternal(name string) (Field, bool) {
	slot, ok := t.external[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[slot], true
}

// Ranges returns the declared range checks.
func (t *Type) Ranges() []Range {
	return append([]Range(nil), t.ranges...)
}

// Lineage lists type names from the root down to t.
func (t *Type) Lineage() []string {
	var names []string
	for current := t; current != nil; current = current.parent {
		names = append([]string{current.name}, names...)
	}
	return names
}

// lookup resolves either an internal or an external name.
func (t *Type) lookup(name string) (Field, bool) {
	if field, ok := t.Field(name); ok {
		return field, true
	}
	return t.FieldByExternal(name)
}

func (t *Type) String() string { return t.name }
