// Package sanitize rewrites markup-bearing survey fields (html blocks,
// completion and loading pages) through a bluemonday policy before the
// document reaches a browser.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-surveymodel/pkg/model"
)

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

func ugcPolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		// Survey markup commonly styles headings and spans.
		policy.AllowAttrs("class").Globally()
		defaultPolicy = policy
	})
	return defaultPolicy
}

// Change records one rewritten field.
type Change struct {
	Path   string
	Field  string
	Before string
	After  string
}

// Sanitizer applies a policy to every HTML field of an entity graph.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithPolicy replaces the default UGC policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(s *Sanitizer) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// New constructs a Sanitizer.
func New(options ...Option) *Sanitizer {
	s := &Sanitizer{policy: ugcPolicy()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// String sanitises a single markup fragment.
func (s *Sanitizer) String(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	return s.policy.Sanitize(raw)
}

// Entity rewrites every explicitly set HTML field under root in place and
// returns the fields that changed. Values go back through Entity.Set, so a
// field is never left holding something its declaration rejects.
func (s *Sanitizer) Entity(root *model.Entity) ([]Change, error) {
	if root == nil {
		return nil, nil
	}
	var changes []Change
	err := root.Walk(func(path string, entity *model.Entity) error {
		for _, field := range entity.Type().Fields() {
			if !field.HTML || !entity.IsSet(field.Name) {
				continue
			}
			before := entity.String(field.Name)
			after := s.String(before)
			if after == before {
				continue
			}
			if err := entity.Set(field.Name, after); err != nil {
				return err
			}
			changes = append(changes, Change{Path: path, Field: field.External, Before: before, After: after})
		}
		return nil
	})
	if err != nil {
		return changes, err
	}
	return changes, nil
}

// Entity sanitises root with the default policy.
func Entity(root *model.Entity) ([]Change, error) {
	return New().Entity(root)
}
