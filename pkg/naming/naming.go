// Package naming translates internal field identifiers (snake_case) into the
// camelCase keys used by the survey wire format and back again. A small fixed
// override table takes precedence for fields whose wire name does not follow
// the derived rule.
package naming

import (
	"strings"
	"unicode"
)

var overrides = map[string]string{
	"kind":              "type",
	"all_rows_required": "isAllRowRequired",
	"expression_format": "format",
	"max_value":         "max",
	"min_value":         "min",
}

var reverseOverrides = func() map[string]string {
	out := make(map[string]string, len(overrides))
	for internal, external := range overrides {
		out[external] = internal
	}
	return out
}()

// External returns the wire name for an internal field identifier.
func External(internal string) string {
	if name, ok := overrides[internal]; ok {
		return name
	}
	return camelize(internal)
}

// Internal returns the internal identifier for a wire name. It is the inverse
// of External for every name External can produce.
func Internal(external string) string {
	if name, ok := reverseOverrides[external]; ok {
		return name
	}
	return snakeize(external)
}

// Overrides returns a copy of the override table keyed by internal name.
func Overrides() map[string]string {
	out := make(map[string]string, len(overrides))
	for internal, external := range overrides {
		out[internal] = external
	}
	return out
}

func camelize(name string) string {
	words := strings.Split(name, "_")
	var out strings.Builder
	out.Grow(len(name))
	for index, word := range words {
		if index == 0 {
			out.WriteString(word)
			continue
		}
		out.WriteString(capitalize(word))
	}
	return out.String()
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func snakeize(name string) string {
	var out strings.Builder
	out.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			out.WriteByte('_')
		}
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}
