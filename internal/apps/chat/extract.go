package chat

import "sort"

// ExtractReply walks an already-parsed JSON value and returns the first
// plausible human-readable reply. The boolean reports whether anything
// was found; callers must not treat an empty string as absence.
//
// Priority order, first match wins:
//  1. the value itself is a string
//  2. choices[0].message.content or choices[0].delta.content
//  3. top-level keys reply, response, output, text, message (fixed order)
//  4. depth-first search for generated_text, summary_text, text
func ExtractReply(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}

	if obj, ok := v.(map[string]any); ok {
		if s, ok := fromChoices(obj); ok {
			return s, true
		}
		for _, key := range []string{"reply", "response", "output", "text", "message"} {
			if s, ok := obj[key].(string); ok {
				return s, true
			}
		}
	}

	return deepSearch(v)
}

func fromChoices(obj map[string]any) (string, bool) {
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	first, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	for _, key := range []string{"message", "delta"} {
		if sub, ok := first[key].(map[string]any); ok {
			if s, ok := sub["content"].(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

var deepKeys = []string{"generated_text", "summary_text", "text"}

func deepSearch(v any) (string, bool) {
	switch node := v.(type) {
	case map[string]any:
		for _, key := range deepKeys {
			if s, ok := node[key].(string); ok {
				return s, true
			}
		}
		// Map iteration order is randomized; walk keys sorted so the
		// same document always yields the same leaf.
		keys := make([]string, 0, len(node))
		for key := range node {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if s, ok := deepSearch(node[key]); ok {
				return s, true
			}
		}
	case []any:
		for _, child := range node {
			if s, ok := deepSearch(child); ok {
				return s, true
			}
		}
	}
	return "", false
}
