package analytics

import (
	"reflect"
	"testing"
)

func TestWordFrequency(t *testing.T) {
	got := WordFrequency("The Widget shop: widgets, WIDGET repairs and the widget-guide. Click here!")
	want := map[string]int{
		"widget":       2,
		"shop":         1,
		"widgets":      1,
		"repairs":      1,
		"widget-guide": 1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want %v", got, want)
	}
}

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"the", "The", "click", "website"} {
		if !IsStopword(w) {
			t.Errorf("IsStopword(%q) = false", w)
		}
	}
	if IsStopword("widget") {
		t.Error(`IsStopword("widget") = true`)
	}
}

func TestTopTerms(t *testing.T) {
	counts := map[string]int{"seo": 4, "audit": 2, "tools": 2, "guide": 1}

	tests := []struct {
		name  string
		total int
		n     int
		want  []Term
	}{
		{
			name:  "density",
			total: 30,
			n:     3,
			want: []Term{
				{Keyword: "seo", Count: 4, Density: 13.33},
				{Keyword: "audit", Count: 2, Density: 6.67},
				{Keyword: "tools", Count: 2, Density: 6.67},
			},
		},
		{
			name:  "no total",
			total: 0,
			n:     1,
			want:  []Term{{Keyword: "seo", Count: 4}},
		},
		{
			name:  "n larger than counts",
			total: 9,
			n:     10,
			want: []Term{
				{Keyword: "seo", Count: 4, Density: 44.44},
				{Keyword: "audit", Count: 2, Density: 22.22},
				{Keyword: "tools", Count: 2, Density: 22.22},
				{Keyword: "guide", Count: 1, Density: 11.11},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopTerms(counts, tt.total, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopTerms() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := TopTerms(nil, 10, 5); got != nil {
		t.Errorf("TopTerms(nil) = %v, want nil", got)
	}
}
