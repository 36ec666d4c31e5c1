package project

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// readMapping decodes a YAML file into a generic mapping. Any failure, or a
// document whose root is not a mapping, yields nil.
func readMapping(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return asMapping(raw)
}

// asMapping converts YAML mappings to map[string]any, stringifying non-string
// keys. Non-mapping values yield nil.
func asMapping(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return nil
	}
}

// scalarString renders a scalar field as a trimmed string. Nil, false,
// mappings, and sequences render empty.
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		if !val {
			return ""
		}
		return "true"
	case map[string]any, map[any]any, []any:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// stringOnly returns v when it is a string, otherwise "". Identity paths must
// be strings; numbers or lists there are treated as absent.
func stringOnly(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
