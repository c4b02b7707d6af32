// Package transform reshapes the loosely-typed wizard document into the
// canonical render model every template consumes. One parameterized
// transformer replaces the per-surface reimplementations the wizard grew:
// sparse mode for "is there anything to show" surfaces, placeholder mode for
// live previews that must always render a coherent page.
package transform

import (
	"fmt"
)

// Resolve returns value unchanged when it carries content: a non-empty
// string, a non-empty slice, or a map with at least one truthy value.
// Anything else yields the fallback. Absent input is the common case here,
// never an error, so this must not panic on any input.
func Resolve(value, fallback any) any {
	if Present(value) {
		return value
	}
	return fallback
}

// Present is the truthiness rule behind Resolve: non-empty string, non-empty
// slice, map with at least one truthy value, true, non-zero number. It is
// exported because section completion checks apply the same rule.
func Present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		for _, mv := range t {
			if Present(mv) {
				return true
			}
		}
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return v != nil
	}
}

// hasContent reports whether a raw item holds any truthy field at all.
// Sparse transforms drop items that fail this check.
func hasContent(item map[string]any) bool {
	return Present(item)
}

// stringField returns the first populated alias among keys, else fallback.
// Legacy form fields arrive under two names (jobTitle/role, name/title,
// link/liveUrl); the earlier alias wins when both are set.
func stringField(item map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if s, ok := item[k].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// stringList coerces a raw field into a string slice. JSON decoding hands us
// []any; anything non-string inside is flattened with fmt.Sprint rather
// than dropped.
func stringList(item map[string]any, key string) []string {
	switch t := item[key].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				out = append(out, s)
			} else if v != nil {
				out = append(out, fmt.Sprint(v))
			}
		}
		return out
	default:
		return []string{}
	}
}

// descriptionList forces description-like fields into array form: a string
// becomes a one-element array, an array passes through, absence becomes a
// one-element array holding the fallback.
func descriptionList(item map[string]any, fallback string, keys ...string) []string {
	for _, k := range keys {
		switch t := item[k].(type) {
		case string:
			if t != "" {
				return []string{t}
			}
		case []string:
			if len(t) > 0 {
				return t
			}
		case []any:
			if len(t) > 0 {
				return stringList(item, k)
			}
		}
	}
	return []string{fallback}
}

func boolField(item map[string]any, key string) bool {
	b, _ := item[key].(bool)
	return b
}
