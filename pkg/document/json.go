package document

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeJSON reads a single JSON document and returns a hashable value.
// Objects become unordered mappings, arrays become sequences, and numbers
// decode as int64 when integral (falling back to float64 on overflow).
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return convertJSON(raw)
}

func convertJSON(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			conv, err := convertJSON(elem)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			conv, err := convertJSON(elem)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("decode json: number %q: %w", val.String(), err)
		}
		return f, nil
	default:
		// string, bool, nil
		return v, nil
	}
}
