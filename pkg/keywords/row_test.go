package keywords

import "testing"

func TestExtractCPC(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"object with string value", map[string]any{"currency": "$", "value": "0.09"}, 0.09},
		{"object with number value", map[string]any{"value": 1.5}, 1.5},
		{"object with junk value", map[string]any{"value": "n/a"}, 0},
		{"object without value", map[string]any{"currency": "$"}, 0},
		{"number", 2.75, 2.75},
		{"int", 3, 3},
		{"numeric string", "4.10", 4.1},
		{"junk string", "free", 0},
		{"list", []any{1.0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCPC(tt.in); got != tt.want {
				t.Errorf("ExtractCPC(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRows(t *testing.T) {
	data := map[string]any{
		"data": []any{
			map[string]any{"keyword": "widgets", "vol": 1200.0, "cpc": map[string]any{"value": "0.50"}, "competition": 0.31, "trend": []any{map[string]any{"month": "May"}}},
			"not a row",
			map[string]any{"keyword": "gadgets", "competition": nil},
		},
	}
	rows := Rows(data)
	if len(rows) != 2 {
		t.Fatalf("Rows() returned %d rows, want 2", len(rows))
	}
	if rows[0].Volume != 1200 || rows[0].CPC != 0.5 || rows[0].Competition != 0.31 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Competition != "Unknown" || rows[1].Volume != 0 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
	if trend, ok := rows[1].Trend.([]any); !ok || len(trend) != 0 {
		t.Errorf("rows[1].Trend = %#v, want empty list", rows[1].Trend)
	}

	if got := Rows(map[string]any{}); got == nil || len(got) != 0 {
		t.Errorf("Rows(empty) = %#v", got)
	}
}
