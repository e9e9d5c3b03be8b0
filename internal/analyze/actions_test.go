package analyze

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, args map[string]string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("url", "", "")
	set.String("file", "", "")
	for k, v := range args {
		if err := set.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSingleTarget(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]string
		want     string
		wantFile bool
		wantErr  bool
	}{
		{name: "url", args: map[string]string{"url": " https://example.com/a, "}, want: "https://example.com/a"},
		{name: "file", args: map[string]string{"file": "page.html"}, want: "page.html", wantFile: true},
		{name: "both", args: map[string]string{"file": "page.html", "url": "https://example.com"}, wantErr: true},
		{name: "neither", args: map[string]string{}, wantErr: true},
		{name: "malformed", args: map[string]string{"url": "ftp://example.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isFile, err := singleTarget(newContext(t, tt.args))
			if (err != nil) != tt.wantErr {
				t.Fatalf("singleTarget() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || isFile != tt.wantFile {
				t.Errorf("singleTarget() = %q, %v, want %q, %v", got, isFile, tt.want, tt.wantFile)
			}
		})
	}
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	html := `<html><head><script type="application/ld+json">{"@type":"Organization"}</script></head></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := readDocument(path)
	if err != nil {
		t.Fatalf("readDocument() error = %v", err)
	}
	if n := doc.Find(`script[type="application/ld+json"]`).Length(); n != 1 {
		t.Errorf("found %d JSON-LD scripts, want 1", n)
	}

	if _, err := readDocument(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
