package schemaorg

import (
	"strings"

	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
)

// FieldExists reports whether path resolves to a usable value in data.
// Dotted paths ("address.streetAddress") walk nested mappings. Only null and the
// empty string count as absent: 0 and false are present.
func FieldExists(data map[string]any, path string) bool {
	if !strings.Contains(path, ".") {
		v, ok := data[path]
		return ok && present(v)
	}

	var current any = data
	for _, part := range strings.Split(path, ".") {
		m, ok := jsonval.AsMap(current)
		if !ok {
			return false
		}
		next, ok := m[part]
		if !ok {
			return false
		}
		current = next
	}
	return present(current)
}

func present(v any) bool {
	if jsonval.KindOf(v) == jsonval.Null {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}
