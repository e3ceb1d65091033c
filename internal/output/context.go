package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a mapping that reports its keys in a stable order.
type OrderedMap interface {
	json.Marshaler
	Keys() []string
	Get(key string) (any, bool)
}

// WriteContext writes m to w in the given format, keeping key order.
func WriteContext(w io.Writer, m OrderedMap, format OutputFormat) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding context as json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		node, err := orderedNode(m)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return fmt.Errorf("encoding context as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (valid: json, yaml)", format)
	}
}

// orderedNode builds a YAML mapping node whose top-level keys follow m.Keys.
func orderedNode(m OrderedMap) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.Keys() {
		value, _ := m.Get(key)

		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("encoding context key %s: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valueNode,
		)
	}
	return node, nil
}
