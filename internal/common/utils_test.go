package common

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  https://example.com  ", "https://example.com"},
		{"[docs](https://example.com/docs)", "https://example.com/docs"},
		{"https://example.com/a,", "https://example.com/a"},
		{"(https://example.com)", "https://example.com"},
		{`"https://example.com/x".`, "https://example.com/x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	valid, invalid := SanitizeAndValidateURLs([]string{
		"https://example.com/page,",
		"http://127.0.0.1:8080/x",
		"ftp://example.com",
		"https://exa mple.com",
		"",
		"https://example.com{}",
	})

	wantValid := []string{"https://example.com/page", "http://127.0.0.1:8080/x"}
	if !reflect.DeepEqual(valid, wantValid) {
		t.Errorf("valid = %v, want %v", valid, wantValid)
	}
	if len(invalid) != 4 {
		t.Errorf("invalid = %v, want 4 entries", invalid)
	}
}

func TestFilterResultFields(t *testing.T) {
	type page struct {
		URL       string `json:"url"`
		Title     string `json:"title"`
		WordCount int    `json:"word_count"`
	}
	p := page{URL: "https://x", Title: "X", WordCount: 10}

	all, err := FilterResultFields(p, "")
	if err != nil || len(all) != 3 {
		t.Fatalf("FilterResultFields(all) = %v, %v", all, err)
	}

	some, err := FilterResultFields(p, "url, word_count,unknown")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"url": "https://x", "word_count": float64(10)}
	if !reflect.DeepEqual(some, want) {
		t.Errorf("FilterResultFields() = %v, want %v", some, want)
	}
}

func TestWriteOutput(t *testing.T) {
	v := map[string]any{"status": "ok"}
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "", want: "{\n  \"status\": \"ok\"\n}\n"},
		{format: "json", want: "{\n  \"status\": \"ok\"\n}\n"},
		{format: "YAML", want: "status: ok\n"},
		{format: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteOutput(&buf, v, tt.format)
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "unknown output format") {
					t.Fatalf("WriteOutput() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteOutput() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteOutput_YAMLNumbers(t *testing.T) {
	v := map[string]any{
		"offers": map[string]any{"price": json.Number("19.90"), "n": json.Number("3")},
		"sku":    "042",
		"tags":   []any{"a", json.Number("7")},
	}
	var buf bytes.Buffer
	if err := WriteOutput(&buf, v, "yaml"); err != nil {
		t.Fatal(err)
	}
	want := `offers:
    n: 3
    price: 19.90
sku: "042"
tags:
    - a
    - 7
`
	if buf.String() != want {
		t.Errorf("WriteOutput() =\n%s\nwant\n%s", buf.String(), want)
	}
}
