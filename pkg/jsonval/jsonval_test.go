package jsonval

import (
	"encoding/json"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{name: "nil", v: nil, want: Null},
		{name: "mapping", v: map[string]any{"a": 1}, want: Mapping},
		{name: "sequence", v: []any{1, 2}, want: Sequence},
		{name: "string", v: "x", want: Scalar},
		{name: "number", v: json.Number("3"), want: Scalar},
		{name: "bool", v: false, want: Scalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTolerantLookups(t *testing.T) {
	m := map[string]any{
		"name":   "widget",
		"count":  json.Number("12"),
		"ratio":  0.5,
		"nested": map[string]any{"k": "v"},
		"list":   []any{map[string]any{"a": 1}, "skip", map[string]any{"b": 2}},
		"null":   nil,
		"numstr": "7",
	}

	if got := String(m, "name", ""); got != "widget" {
		t.Errorf("String(name) = %q", got)
	}
	if got := String(m, "count", "def"); got != "def" {
		t.Errorf("String(count) = %q, want def", got)
	}
	if got := Int(m, "count", 0); got != 12 {
		t.Errorf("Int(count) = %d, want 12", got)
	}
	if got := Int(m, "numstr", -1); got != -1 {
		t.Errorf("Int(numstr) = %d, want -1", got)
	}
	if got := Number(m, "ratio", 0); got != 0.5 {
		t.Errorf("Number(ratio) = %v, want 0.5", got)
	}
	if got := Map(m, "name"); len(got) != 0 {
		t.Errorf("Map(name) = %v, want empty", got)
	}
	if got := Map(m, "nested"); got["k"] != "v" {
		t.Errorf("Map(nested) = %v", got)
	}
	if got := Maps(m, "list"); len(got) != 2 {
		t.Errorf("Maps(list) len = %d, want 2", len(got))
	}
	if got := Value(m, "null", "fallback"); got != "fallback" {
		t.Errorf("Value(null) = %v, want fallback", got)
	}
	if !Has(m, "null") {
		t.Error("Has(null) = false, want true")
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		v      any
		want   float64
		wantOK bool
	}{
		{v: 1.25, want: 1.25, wantOK: true},
		{v: json.Number("0.09"), want: 0.09, wantOK: true},
		{v: "1.5", want: 1.5, wantOK: true},
		{v: "abc", want: 0, wantOK: false},
		{v: nil, want: 0, wantOK: false},
		{v: map[string]any{}, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Float(tt.v)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Float(%v) = (%v, %v), want (%v, %v)", tt.v, got, ok, tt.want, tt.wantOK)
		}
	}
}
