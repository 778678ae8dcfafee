package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-surveymodel/pkg/constraints"
)

// Registry binds entity types to a constraint provider and resolves nested
// entities by family and discriminator while parsing. The same Type may be
// registered with several registries, each validating against its own
// constraint tables.
type Registry struct {
	mu       sync.RWMutex
	provider constraints.Provider
	kinds    map[Family]map[string]*Type
	renderAs map[Family]map[string]*Type
	fallback map[Family]*Type
	order    []*Type
}

// NewRegistry constructs an empty registry. A nil provider falls back to the
// built-in SurveyJS tables.
func NewRegistry(provider constraints.Provider) *Registry {
	if provider == nil {
		provider = constraints.Builtin()
	}
	return &Registry{
		provider: provider,
		kinds:    make(map[Family]map[string]*Type),
		renderAs: make(map[Family]map[string]*Type),
		fallback: make(map[Family]*Type),
	}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// unbound serves types that were never registered.
func unbound() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// Constraints returns the provider enum fields are validated against.
func (r *Registry) Constraints() constraints.Provider {
	if r == nil {
		return unbound().provider
	}
	return r.provider
}

// Register adds t under its discriminator. Types without a fixed kind
// (pages, surveys) are registered under the empty kind of their family.
func (r *Registry) Register(t *Type) error {
	return r.register(t, "")
}

// RegisterRenderAs adds t as the variant chosen when an entity of t's kind
// also carries the given renderAs value.
func (r *Registry) RegisterRenderAs(t *Type, renderAs string) error {
	if renderAs == "" {
		return fmt.Errorf("model registry: %s: renderAs is required", t.Name())
	}
	return r.register(t, renderAs)
}

func (r *Registry) register(t *Type, renderAs string) error {
	if r == nil || t == nil {
		return fmt.Errorf("model registry: nil registry or type")
	}
	if err := r.checkDefaults(t); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := t.Kind()
	table := r.kinds
	key := kind
	if renderAs != "" {
		table = r.renderAs
		key = kind + "/" + renderAs
	}
	if table[t.family] == nil {
		table[t.family] = make(map[string]*Type)
	}
	if existing, ok := table[t.family][key]; ok && existing != t {
		return fmt.Errorf("model registry: %s kind %q already registered by %s", t.family, key, existing.Name())
	}
	table[t.family][key] = t
	if t.registry == nil {
		t.registry = r
	}
	r.order = append(r.order, t)
	return nil
}

// checkDefaults rejects types whose optional enum defaults fall outside the
// registry's tables; those entities would encode values Decode refuses.
func (r *Registry) checkDefaults(t *Type) error {
	var errs []error
	for _, f := range t.Fields() {
		if f.Type != FieldEnum || f.Required || f.Fixed || f.Constraint == "" {
			continue
		}
		def, ok := f.Default.(string)
		if !ok || constraints.Allows(r.provider, f.Constraint, def) {
			continue
		}
		allowed, _ := r.provider.AllowedValues(f.Constraint)
		errs = append(errs, &ConstraintError{Entity: t.Name(), Field: f.Name, Value: def, Allowed: allowed})
	}
	if len(errs) > 0 {
		return fmt.Errorf("model registry: %s default: %w", t.Name(), errors.Join(errs...))
	}
	return nil
}

// MustRegister registers every type, panicking on conflicts.
func (r *Registry) MustRegister(types ...*Type) {
	for _, t := range types {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

// SetFallback selects the type used for a family when no registered kind
// matches. Element lists use it to keep entities of kinds this model does
// not declare yet.
func (r *Registry) SetFallback(family Family, t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback[family] = t
	if t.registry == nil {
		t.registry = r
	}
}

// Resolve returns the type for an entity of family carrying kind and the
// optional renderAs hint.
func (r *Registry) Resolve(family Family, kind, renderAs string) (*Type, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderAs != "" {
		if t, ok := r.renderAs[family][kind+"/"+renderAs]; ok {
			return t, true
		}
	}
	if t, ok := r.kinds[family][kind]; ok {
		return t, true
	}
	if t, ok := r.fallback[family]; ok {
		return t, true
	}
	return nil, false
}

// Types returns registered types in registration order.
func (r *Registry) Types() []*Type {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Type(nil), r.order...)
}

// Kinds lists the discriminators registered for family, sorted.
func (r *Registry) Kinds(family Family) []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.kinds[family]))
	for kind := range r.kinds[family] {
		if kind != "" {
			out = append(out, kind)
		}
	}
	sort.Strings(out)
	return out
}

// DecodeFamily parses a wire object into the variant its "type" (and
// "renderAs") keys select within family.
func (r *Registry) DecodeFamily(family Family, data []byte) (*Entity, error) {
	t, err := r.resolveRaw(family, data)
	if err != nil {
		return nil, err
	}
	return r.Decode(t, data)
}

func (r *Registry) resolveRaw(family Family, data []byte) (*Type, error) {
	var probe struct {
		Kind     any `json:"type"`
		RenderAs any `json:"renderAs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &TypeMismatchError{Entity: string(family), Expected: "object", Value: string(data)}
	}
	kind, _ := probe.Kind.(string)
	renderAs, _ := probe.RenderAs.(string)
	t, ok := r.Resolve(family, kind, renderAs)
	if !ok {
		return nil, &ConstraintError{Entity: string(family), Field: "kind", Value: kind, Allowed: r.Kinds(family)}
	}
	return t, nil
}

func (r *Registry) resolveValues(family Family, values Values) (*Type, error) {
	kind, _ := values["kind"].(string)
	if kind == "" {
		kind, _ = values["type"].(string)
	}
	renderAs, _ := values["render_as"].(string)
	if renderAs == "" {
		renderAs, _ = values["renderAs"].(string)
	}
	t, ok := r.Resolve(family, kind, renderAs)
	if !ok {
		return nil, &ConstraintError{Entity: string(family), Field: "kind", Value: kind, Allowed: r.Kinds(family)}
	}
	return t, nil
}
