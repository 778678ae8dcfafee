package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Decode parses a wire object into an entity of t using the registry t was
// registered with.
func Decode(t *Type, data []byte) (*Entity, error) {
	return t.registry.Decode(t, data)
}

// Decode parses a wire object into an entity of t. Keys are reverse
// translated to internal names; keys that match no declared field are kept
// verbatim, in order, as extra fields. A JSON null for a declared field
// leaves it at its default.
func (r *Registry) Decode(t *Type, data []byte) (*Entity, error) {
	r = r.orUnbound()
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &TypeMismatchError{Entity: t.name, Expected: "object", Value: preview(trimmed)}
	}
	pairs := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, pairs); err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", t.name, err)
	}

	entity := r.empty(t)
	b := binder{reg: r, entity: t.name}
	var errs []error
	failed := make(map[string]bool)
	for pair := pairs.Oldest(); pair != nil; pair = pair.Next() {
		field, ok := t.FieldByExternal(pair.Key)
		if !ok {
			entity.extras.Set(pair.Key, pair.Value)
			continue
		}
		if bytes.Equal(bytes.TrimSpace(pair.Value), []byte("null")) {
			continue
		}
		coerced, err := b.coerce(field, pair.Value)
		if err != nil {
			errs = append(errs, err)
			failed[field.Name] = true
			continue
		}
		entity.values[field.Name] = coerced
	}
	return entity.finish(errs, failed)
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	omitDefaults bool
	prefix       string
	indent       string
}

// WithOmitDefaults emits only explicitly set fields (plus the discriminator)
// instead of every declared field.
func WithOmitDefaults() EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.omitDefaults = true
	}
}

// WithIndent pretty-prints the output.
func WithIndent(prefix, indent string) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.prefix = prefix
		cfg.indent = indent
	}
}

// Encode serialises e and every nested entity into the wire format. Keys
// follow declaration order, then extra fields in arrival order.
func Encode(e *Entity, options ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	data, err := json.Marshal(e.ordered(cfg))
	if err != nil {
		return nil, fmt.Errorf("model: encode %s: %w", e.typ.name, err)
	}
	if cfg.indent == "" && cfg.prefix == "" {
		return data, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, cfg.prefix, cfg.indent); err != nil {
		return nil, fmt.Errorf("model: indent %s: %w", e.typ.name, err)
	}
	return out.Bytes(), nil
}

// MarshalJSON emits every declared field, defaults included.
func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ordered(encodeConfig{}))
}

// UnmarshalJSON re-parses data into the type e already has. It lets an
// entity obtained from a constructor be refilled from a document.
func (e *Entity) UnmarshalJSON(data []byte) error {
	if e.typ == nil {
		return fmt.Errorf("model: unmarshal into an entity without a type")
	}
	decoded, err := e.reg.Decode(e.typ, data)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}

// ToMap returns the wire representation as an ordered map. Nested entities
// are ordered maps too.
func (e *Entity) ToMap(options ...EncodeOption) *orderedmap.OrderedMap[string, any] {
	cfg := encodeConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return e.ordered(cfg)
}

func (e *Entity) ordered(cfg encodeConfig) *orderedmap.OrderedMap[string, any] {
	out := orderedmap.New[string, any]()
	for _, field := range e.typ.fields {
		value, set := e.values[field.Name]
		if !set {
			if cfg.omitDefaults && !field.Fixed {
				continue
			}
			value = field.Default
		}
		if entities, ok := value.([]*Entity); ok {
			nested := make([]any, len(entities))
			for i, child := range entities {
				nested[i] = child.ordered(cfg)
			}
			value = nested
		}
		out.Set(field.External, value)
	}
	for pair := e.extras.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}

func preview(data []byte) string {
	if len(data) > 32 {
		return string(data[:32]) + "..."
	}
	return string(data)
}
