// Package jsonval classifies and reads decoded JSON values (the output of
// encoding/json decoding into any) without panicking on shape mismatches.
package jsonval

import (
	"encoding/json"
	"strconv"
)

// Kind is the tag of a decoded JSON value.
type Kind int

const (
	Null Kind = iota
	Mapping
	Sequence
	Scalar
)

func (k Kind) String() string {
	switch k {
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	default:
		return "null"
	}
}

// KindOf reports the tag of v. Anything that is not a map, slice or nil is a scalar.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return Null
	case map[string]any:
		return Mapping
	case []any:
		return Sequence
	default:
		return Scalar
	}
}

// AsMap returns v as a mapping, or nil and false.
func AsMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsSlice returns v as a sequence, or nil and false.
func AsSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// Map returns m[key] when it is a mapping, otherwise an empty mapping.
func Map(m map[string]any, key string) map[string]any {
	if sub, ok := AsMap(m[key]); ok {
		return sub
	}
	return map[string]any{}
}

// Slice returns m[key] when it is a sequence, otherwise nil.
func Slice(m map[string]any, key string) []any {
	s, _ := AsSlice(m[key])
	return s
}

// Maps returns the mapping elements of m[key], skipping anything else.
func Maps(m map[string]any, key string) []map[string]any {
	var out []map[string]any
	for _, item := range Slice(m, key) {
		if sub, ok := AsMap(item); ok {
			out = append(out, sub)
		}
	}
	return out
}

// Has reports whether key is present in m, whatever its value.
func Has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// String returns m[key] when it is a string, otherwise def.
func String(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

// Float converts a numeric scalar to float64. Numeric strings are accepted.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Number returns m[key] as a float64, or def when absent or not numeric.
func Number(m map[string]any, key string, def float64) float64 {
	if f, ok := Float(m[key]); ok {
		if _, isString := m[key].(string); !isString {
			return f
		}
	}
	return def
}

// Int returns m[key] truncated to int, or def when absent or not numeric.
func Int(m map[string]any, key string, def int) int {
	if v, ok := m[key]; ok {
		if _, isString := v.(string); isString {
			return def
		}
		if f, ok := Float(v); ok {
			return int(f)
		}
	}
	return def
}

// Value returns m[key] unless it is missing or null, in which case def.
func Value(m map[string]any, key string, def any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return def
}
