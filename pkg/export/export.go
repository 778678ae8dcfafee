// Package export describes registered survey types as machine-readable
// schemas for editors and API tooling: JSON Schema (draft 2020-12) through
// invopop/jsonschema and OpenAPI 3 components through kin-openapi. Both walk
// the same flattened field tables the model validates against, so enums
// reflect the registry's bound constraint tables.
package export

import (
	"encoding/json"

	"github.com/goliatone/go-surveymodel/pkg/model"
)

// definitions groups registered types by family in registration order.
func definitions(reg *model.Registry) (types []*model.Type, byFamily map[model.Family][]*model.Type) {
	byFamily = make(map[model.Family][]*model.Type)
	seen := make(map[*model.Type]bool)
	for _, t := range reg.Types() {
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
		byFamily[t.Family()] = append(byFamily[t.Family()], t)
	}
	return types, byFamily
}

func required(t *model.Type) []string {
	var out []string
	for _, field := range t.Fields() {
		if field.Required {
			out = append(out, field.External)
		}
	}
	return out
}

func allowed(reg *model.Registry, field model.Field) []any {
	if field.Constraint == "" {
		return nil
	}
	values, ok := reg.Constraints().AllowedValues(field.Constraint)
	if !ok {
		return nil
	}
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

// jsonDefault renders a field default as plain JSON data (float64, []any,
// map[string]any) so schema tooling can check it.
func jsonDefault(field model.Field) (any, bool) {
	if field.Required || field.Default == nil {
		return nil, false
	}
	data, err := json.Marshal(field.Default)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}
