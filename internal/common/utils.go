package common

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	validURLPattern     = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.:]*[a-zA-Z0-9](/[^\s]*)?$`)
)

// SanitizeURL cleans up a pasted URL: surrounding whitespace and quotes,
// markdown link syntax and stray trailing punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](https://example.com) -> https://example.com
	if m := markdownLinkPattern.FindStringSubmatch(cleaned); len(m) > 1 {
		cleaned = m[1]
	}

	cleaned = strings.TrimRight(cleaned, `,.)}]"'>;`)
	cleaned = strings.TrimLeft(cleaned, `([<"'`)
	return strings.TrimSpace(cleaned)
}

// SanitizeAndValidateURLs returns the cleaned URLs that are usable and the
// raw inputs that are not, even after cleanup.
func SanitizeAndValidateURLs(urls []string) ([]string, []string) {
	valid := make([]string, 0, len(urls))
	var invalid []string

	for _, rawURL := range urls {
		cleaned := SanitizeURL(rawURL)
		if !usableURL(cleaned) {
			invalid = append(invalid, rawURL)
			continue
		}
		valid = append(valid, cleaned)
	}
	return valid, invalid
}

func usableURL(s string) bool {
	if s == "" || strings.Contains(s, " ") || !validURLPattern.MatchString(s) {
		return false
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != "" && !strings.ContainsAny(parsed.Host, "{}[]<>\"'")
}

// FilterResultFields keeps only the comma separated top-level JSON fields of
// result. An empty list keeps everything.
func FilterResultFields(result any, fieldsStr string) (map[string]any, error) {
	full, err := structToMap(result)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(fieldsStr) == "" {
		return full, nil
	}

	filtered := make(map[string]any)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if v, ok := full[field]; ok {
			filtered[field] = v
		}
	}
	return filtered, nil
}

func structToMap(obj any) (map[string]any, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to convert result: %w", err)
	}
	return result, nil
}

// WriteOutput renders v to w as indented JSON, or YAML when format is "yaml".
func WriteOutput(w io.Writer, v any, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = marshalYAML(v)
	case "", "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown output format: %s (use: json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// marshalYAML goes through JSON so json.Number values and json tags render
// the same way in both formats. YAML is a superset of JSON, so the decoded
// node tree keeps number and string tags; only the JSON flow style is reset.
func marshalYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	resetStyle(&doc)
	return yaml.Marshal(&doc)
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
