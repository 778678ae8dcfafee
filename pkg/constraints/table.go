// Package constraints holds the named allowed-value sets that constrained
// survey fields are validated against. The model binds fields to a Tag and
// resolves the set through a Provider, so callers can supply their own tables
// when the rendering engine they target accepts a different vocabulary.
package constraints

import (
	"sort"
	"sync"
)

// Provider resolves the allowed values for a tag. The boolean reports whether
// the tag is known; an unknown tag places no restriction on the value.
type Provider interface {
	AllowedValues(tag Tag) ([]string, bool)
}

// Table is an in-memory Provider. Value order is preserved so error messages
// and schema exports list values the way they were registered.
type Table struct {
	mu     sync.RWMutex
	values map[Tag][]string
	index  map[Tag]map[string]struct{}
}

// Ensure Table satisfies Provider.
var _ Provider = (*Table)(nil)

// NewTable constructs an empty table.
func NewTable() *Table {
	return &Table{
		values: make(map[Tag][]string),
		index:  make(map[Tag]map[string]struct{}),
	}
}

// Builtin returns a fresh table populated with the values understood by the
// SurveyJS rendering engine.
func Builtin() *Table {
	table := NewTable()
	for tag, values := range builtinValues {
		table.Register(tag, values...)
	}
	return table
}

// Register replaces the allowed values for tag. Duplicate values are dropped
// while keeping first-seen order.
func (t *Table) Register(tag Tag, values ...string) {
	if t == nil || tag == "" {
		return
	}
	ordered := make([]string, 0, len(values))
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, dup := set[value]; dup {
			continue
		}
		set[value] = struct{}{}
		ordered = append(ordered, value)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[tag] = ordered
	t.index[tag] = set
}

// AllowedValues implements Provider. The returned slice is a copy.
func (t *Table) AllowedValues(tag Tag) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	values, ok := t.values[tag]
	if !ok {
		return nil, false
	}
	return append([]string(nil), values...), true
}

// Contains reports whether value is allowed for tag. Unknown tags allow any
// value.
func (t *Table) Contains(tag Tag, value string) bool {
	if t == nil {
		return true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	set, ok := t.index[tag]
	if !ok {
		return true
	}
	_, found := set[value]
	return found
}

// Tags lists the registered tags in lexical order.
func (t *Table) Tags() []Tag {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Tag, 0, len(t.values))
	for tag := range t.values {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Allows reports whether value is accepted by provider for tag. It is the
// lookup the model uses, so Providers other than Table behave the same way.
func Allows(provider Provider, tag Tag, value string) bool {
	if provider == nil || tag == "" {
		return true
	}
	if table, ok := provider.(*Table); ok {
		return table.Contains(tag, value)
	}
	values, ok := provider.AllowedValues(tag)
	if !ok {
		return true
	}
	for _, allowed := range values {
		if allowed == value {
			return true
		}
	}
	return false
}
