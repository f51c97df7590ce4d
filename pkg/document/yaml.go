package document

import (
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/provenlab/provhash/pkg/provhash"
	"gopkg.in/yaml.v3"
)

// YAMLOptions controls how YAML documents map onto hashable values.
type YAMLOptions struct {
	// OrderedMaps preserves document order by decoding mappings as
	// provhash.OrderedMap instead of unordered maps.
	OrderedMaps bool
}

// DecodeYAML reads a single YAML document and returns a hashable value. The
// decoder works at the node level so resolved tags pick the value kind:
// !!timestamp decodes to time.Time, !!binary to []byte, !!set to
// provhash.Set, and the local !uuid tag to uuid.UUID. An empty document
// decodes to nil.
func DecodeYAML(r io.Reader, opts YAMLOptions) (any, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return convertYAML(&root, opts)
}

func convertYAML(n *yaml.Node, opts YAMLOptions) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convertYAML(n.Content[0], opts)
	case yaml.AliasNode:
		return convertYAML(n.Alias, opts)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, elem := range n.Content {
			conv, err := convertYAML(elem, opts)
			if err != nil {
				return nil, err
			}
			out = append(out, conv)
		}
		return out, nil
	case yaml.MappingNode:
		if n.ShortTag() == "!!set" {
			return convertYAMLSet(n, opts)
		}
		return convertYAMLMapping(n, opts)
	case yaml.ScalarNode:
		return convertYAMLScalar(n)
	}
	return nil, fmt.Errorf("decode yaml: line %d: unsupported node kind", n.Line)
}

// convertYAMLSet handles the standard !!set shorthand: a mapping whose keys
// are the members and whose values are all null.
func convertYAMLSet(n *yaml.Node, opts YAMLOptions) (any, error) {
	set := make(provhash.Set, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		member, err := convertYAML(n.Content[i], opts)
		if err != nil {
			return nil, err
		}
		set = append(set, member)
	}
	return set, nil
}

func convertYAMLMapping(n *yaml.Node, opts YAMLOptions) (any, error) {
	entries := make(provhash.OrderedMap, 0, len(n.Content)/2)
	seen := make(map[any]bool, len(n.Content)/2)
	allStrings := true

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, err := convertYAML(n.Content[i], opts)
		if err != nil {
			return nil, err
		}
		value, err := convertYAML(n.Content[i+1], opts)
		if err != nil {
			return nil, err
		}
		if key == nil || reflect.TypeOf(key).Comparable() {
			if seen[key] {
				return nil, fmt.Errorf("decode yaml: line %d: duplicate mapping key %v", n.Content[i].Line, key)
			}
			seen[key] = true
		} else if !opts.OrderedMaps {
			return nil, fmt.Errorf("decode yaml: line %d: mapping key %T is not usable in an unordered map", n.Content[i].Line, key)
		}
		if _, ok := key.(string); !ok {
			allStrings = false
		}
		entries = append(entries, provhash.MapEntry{Key: key, Value: value})
	}

	if opts.OrderedMaps {
		return entries, nil
	}
	if allStrings {
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.Key.(string)] = e.Value
		}
		return out, nil
	}
	out := make(map[any]any, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}

func convertYAMLScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode yaml: line %d: %w", n.Line, err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("decode yaml: line %d: %w", n.Line, err)
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: line %d: %w", n.Line, err)
		}
		return f, nil
	case "!!timestamp":
		var ts time.Time
		if err := n.Decode(&ts); err != nil {
			return nil, fmt.Errorf("decode yaml: line %d: %w", n.Line, err)
		}
		return ts, nil
	case "!!binary":
		// yaml.v3 refuses to decode a !!binary node into []byte directly;
		// decoding into a string yields the base64-decoded raw bytes.
		var raw string
		if err := n.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode yaml: line %d: %w", n.Line, err)
		}
		return []byte(raw), nil
	case "!uuid":
		id, err := uuid.Parse(n.Value)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: line %d: %w", n.Line, err)
		}
		return id, nil
	default:
		// !!str and any unrecognized tag
		return n.Value, nil
	}
}
