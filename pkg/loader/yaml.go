package loader

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ToJSON converts raw to canonical JSON. YAML mappings keep their key order
// so undeclared fields are re-emitted where the author wrote them.
func ToJSON(raw []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		if !json.Valid(raw) {
			return nil, fmt.Errorf("loader: invalid JSON document")
		}
		return append([]byte(nil), raw...), nil
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("loader: parse yaml: %w", err)
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			return nil, fmt.Errorf("loader: yaml document is empty")
		}
		value, err := yamlValue(doc.Content[0])
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("loader: encode yaml as json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("loader: unsupported format %q", format)
	}
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		out := orderedmap.New[string, any]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("loader: yaml line %d: mapping keys must be scalars", key.Line)
			}
			converted, err := yamlValue(value)
			if err != nil {
				return nil, err
			}
			out.Set(key.Value, converted)
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			converted, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("loader: yaml line %d: %w", node.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("loader: yaml line %d: unsupported node", node.Line)
	}
}
