// Package sanitize neutralizes markup in audit fields before they are
// persisted and later rendered by the admin UI.
package sanitize

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"adminguard/internal/authz/model"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every element; script and style bodies are dropped and the
// remaining text is HTML-escaped.
var strict = bluemonday.StrictPolicy()

// maxPasses bounds String; entity-encoded markup needs one pass per level of
// encoding before the text stops changing.
const maxPasses = 4

// String returns s with all markup removed and entities decoded, so plain
// text such as "O'Brien & Sons" comes back unchanged. Decoding can expose
// markup that was entity-encoded, so stripping repeats until the text is
// stable. If it never settles the escaped form is returned.
func String(s string) string {
	if s == "" {
		return s
	}
	for i := 0; i < maxPasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
		if next == s {
			return next
		}
		s = next
	}
	return strings.TrimSpace(strict.Sanitize(s))
}

// Details returns a sanitized copy of in. Strings are stripped, numbers,
// bools and nil pass through, nested maps and slices are stripped and stored
// as JSON text. Keys that sanitize to empty are dropped.
func Details(in model.Details) (model.Details, error) {
	out := make(model.Details, len(in))
	for k, v := range in {
		key := String(k)
		if key == "" {
			continue
		}
		val, err := value(v)
		if err != nil {
			return nil, fmt.Errorf("details[%s]: %w", key, err)
		}
		out[key] = val
	}
	return out, nil
}

func value(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return String(t), nil
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		// Round-trip through JSON so arbitrary nested values become plain
		// maps and slices, strip every string inside, then store as text.
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return nil, err
		}
		clean, err := json.Marshal(deep(generic))
		if err != nil {
			return nil, err
		}
		return string(clean), nil
	}
}

func deep(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			if key := String(k); key != "" {
				out[key] = deep(inner)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = deep(inner)
		}
		return out
	default:
		return t
	}
}
