package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Values carries field values keyed by internal name for programmatic
// construction. Wire names are accepted too; keys matching no declared field
// become extra fields.
type Values map[string]any

// Entity is a validated instance of a Type. Declared values are kept apart
// from extra fields, which are preserved verbatim and in arrival order.
type Entity struct {
	typ    *Type
	reg    *Registry
	values map[string]any
	extras *orderedmap.OrderedMap[string, json.RawMessage]
}

// New constructs an entity of t within the registry t was registered with.
func New(t *Type, values Values) (*Entity, error) {
	return t.registry.New(t, values)
}

// MustNew is New for static fixtures; it panics on invalid input.
func MustNew(t *Type, values Values) *Entity {
	entity, err := New(t, values)
	if err != nil {
		panic(err)
	}
	return entity
}

// New constructs an entity of t validated against r's constraint tables.
// Every offending field is reported; no partially built entity is returned.
func (r *Registry) New(t *Type, values Values) (*Entity, error) {
	r = r.orUnbound()
	entity := r.empty(t)
	b := binder{reg: r, entity: t.name}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []error
	failed := make(map[string]bool)
	for _, key := range keys {
		value := values[key]
		field, ok := t.lookup(key)
		if !ok {
			raw, err := json.Marshal(value)
			if err != nil {
				errs = append(errs, &TypeMismatchError{Entity: t.name, Field: key, Expected: "json value", Value: value})
				continue
			}
			entity.extras.Set(key, raw)
			continue
		}
		if value == nil {
			continue
		}
		coerced, err := b.coerce(field, value)
		if err != nil {
			errs = append(errs, err)
			failed[field.Name] = true
			continue
		}
		entity.values[field.Name] = coerced
	}
	return entity.finish(errs, failed)
}

func (r *Registry) orUnbound() *Registry {
	if r == nil {
		return unbound()
	}
	return r
}

func (r *Registry) empty(t *Type) *Entity {
	return &Entity{
		typ:    t,
		reg:    r,
		values: make(map[string]any, len(t.fields)),
		extras: orderedmap.New[string, json.RawMessage](),
	}
}

func (e *Entity) finish(errs []error, failed map[string]bool) (*Entity, error) {
	for _, field := range e.typ.fields {
		if !field.Required || failed[field.Name] {
			continue
		}
		if _, ok := e.values[field.Name]; !ok {
			errs = append(errs, &MissingFieldError{Entity: e.typ.name, Field: field.Name})
		}
	}
	if len(errs) == 0 {
		if err := checkRanges(e.typ, e.typ.name, e.Int); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return e, nil
}

// Type returns the variant of e.
func (e *Entity) Type() *Type { return e.typ }

// Registry returns the registry e validates against.
func (e *Entity) Registry() *Registry { return e.reg }

// Kind returns the discriminator value, or "" for pages and surveys.
func (e *Entity) Kind() string {
	if _, ok := e.typ.Field("kind"); !ok {
		return ""
	}
	return e.String("kind")
}

// Get returns the value of a declared field, falling back to its default.
// The boolean is false for undeclared names. List and object values are
// copies; nested entities are shared so they can be edited in place.
func (e *Entity) Get(name string) (any, bool) {
	field, ok := e.typ.lookup(name)
	if !ok {
		return nil, false
	}
	if value, ok := e.values[field.Name]; ok {
		return cloneValue(value, false), true
	}
	return cloneValue(field.Default, false), true
}

// IsSet reports whether the field was given a value explicitly.
func (e *Entity) IsSet(name string) bool {
	field, ok := e.typ.lookup(name)
	if !ok {
		return false
	}
	_, set := e.values[field.Name]
	return set
}

func (e *Entity) String(name string) string {
	value, _ := e.Get(name)
	s, _ := value.(string)
	return s
}

func (e *Entity) Bool(name string) bool {
	value, _ := e.Get(name)
	b, _ := value.(bool)
	return b
}

func (e *Entity) Int(name string) int {
	value, _ := e.Get(name)
	n, _ := value.(int)
	return n
}

// Strings returns string and URL list values.
func (e *Entity) Strings(name string) []string {
	value, _ := e.Get(name)
	items, _ := value.([]string)
	return items
}

// Entities returns the nested entities of an entity-list field.
func (e *Entity) Entities(name string) []*Entity {
	value, _ := e.Get(name)
	items, _ := value.([]*Entity)
	return items
}

// Set assigns a single declared field after validating it. Range checks the
// field takes part in are re-run; on failure e is left unchanged.
func (e *Entity) Set(name string, value any) error {
	field, ok := e.typ.lookup(name)
	if !ok {
		return fmt.Errorf("model: %s %q: %w", e.typ.name, name, ErrUnknownField)
	}
	var coerced any
	if value == nil {
		if field.Required {
			return &MissingFieldError{Entity: e.typ.name, Field: field.Name}
		}
	} else {
		var err error
		coerced, err = binder{reg: e.reg, entity: e.typ.name}.coerce(field, value)
		if err != nil {
			return err
		}
	}

	previous, had := e.values[field.Name]
	if value == nil {
		delete(e.values, field.Name)
	} else {
		e.values[field.Name] = coerced
	}
	if err := checkRanges(e.typ, e.typ.name, e.Int); err != nil {
		if had {
			e.values[field.Name] = previous
		} else {
			delete(e.values, field.Name)
		}
		return err
	}
	return nil
}

// Append adds items to the end of a list field, validating the result as a
// whole.
func (e *Entity) Append(name string, items ...any) error {
	field, ok := e.typ.lookup(name)
	if !ok {
		return fmt.Errorf("model: %s %q: %w", e.typ.name, name, ErrUnknownField)
	}
	if !field.IsList() {
		return &TypeMismatchError{Entity: e.typ.name, Field: field.Name, Expected: "list field", Value: string(field.Type)}
	}
	current, _ := e.Get(field.Name)
	existing, _ := toSlice(current)
	combined := make([]any, 0, len(existing)+len(items))
	combined = append(combined, existing...)
	combined = append(combined, items...)
	return e.Set(field.Name, combined)
}

// Extra returns the verbatim value of an undeclared field.
func (e *Entity) Extra(key string) (json.RawMessage, bool) {
	raw, ok := e.extras.Get(key)
	if !ok {
		return nil, false
	}
	return append(json.RawMessage(nil), raw...), true
}

// SetExtra stores an undeclared field. Keys naming a declared field are
// rejected so a field can never be emitted twice.
func (e *Entity) SetExtra(key string, value any) error {
	if _, declared := e.typ.lookup(key); declared {
		return fmt.Errorf("model: %s %q is a declared field, use Set", e.typ.name, key)
	}
	raw, ok := value.(json.RawMessage)
	if !ok {
		data, err := json.Marshal(value)
		if err != nil {
			return &TypeMismatchError{Entity: e.typ.name, Field: key, Expected: "json value", Value: value}
		}
		raw = data
	}
	if !json.Valid(raw) {
		return &TypeMismatchError{Entity: e.typ.name, Field: key, Expected: "json value", Value: string(raw)}
	}
	e.extras.Set(key, append(json.RawMessage(nil), raw...))
	return nil
}

// DeleteExtra removes an undeclared field.
func (e *Entity) DeleteExtra(key string) {
	e.extras.Delete(key)
}

// ExtraKeys lists undeclared fields in arrival order.
func (e *Entity) ExtraKeys() []string {
	keys := make([]string, 0, e.extras.Len())
	for pair := e.extras.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Equal reports whether both entities have the same type, the same value for
// every declared field (defaults included) and the same extra fields.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.typ != other.typ {
		return false
	}
	for _, field := range e.typ.fields {
		left, _ := e.Get(field.Name)
		right, _ := other.Get(field.Name)
		if !equalValue(left, right) {
			return false
		}
	}
	if e.extras.Len() != other.extras.Len() {
		return false
	}
	for pair := e.extras.Oldest(); pair != nil; pair = pair.Next() {
		raw, ok := other.extras.Get(pair.Key)
		if !ok || !equalJSON(pair.Value, raw) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of e, nested entities included.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	out := e.reg.empty(e.typ)
	for name, value := range e.values {
		out.values[name] = cloneValue(value, true)
	}
	for pair := e.extras.Oldest(); pair != nil; pair = pair.Next() {
		out.extras.Set(pair.Key, append(json.RawMessage(nil), pair.Value...))
	}
	return out
}

// Walk visits e and every nested entity depth-first in presentation order.
// The path uses wire names, e.g. "pages[0].elements[2]".
func (e *Entity) Walk(fn func(path string, entity *Entity) error) error {
	return e.walk("", fn)
}

func (e *Entity) walk(path string, fn func(string, *Entity) error) error {
	if err := fn(path, e); err != nil {
		return err
	}
	for _, field := range e.typ.fields {
		if field.Type != FieldEntities {
			continue
		}
		value, ok := e.values[field.Name]
		if !ok {
			continue
		}
		for i, child := range value.([]*Entity) {
			if err := child.walk(joinPath(path, fmt.Sprintf("%s[%d]", field.External, i)), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func cloneValue(value any, deep bool) any {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []int:
		return append([]int{}, v...)
	case []*Entity:
		out := make([]*Entity, len(v))
		for i, entity := range v {
			if deep {
				entity = entity.Clone()
			}
			out[i] = entity
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item, deep)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item, deep)
		}
		return out
	default:
		return value
	}
}

func equalValue(left, right any) bool {
	leftEntities, ok := left.([]*Entity)
	if !ok {
		return reflect.DeepEqual(left, right)
	}
	rightEntities, ok := right.([]*Entity)
	if !ok || len(leftEntities) != len(rightEntities) {
		return false
	}
	for i := range leftEntities {
		if !leftEntities[i].Equal(rightEntities[i]) {
			return false
		}
	}
	return true
}

func equalJSON(left, right json.RawMessage) bool {
	var a, b bytes.Buffer
	if json.Compact(&a, left) != nil || json.Compact(&b, right) != nil {
		return bytes.Equal(left, right)
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}
