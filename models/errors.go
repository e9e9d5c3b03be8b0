package models

// ToolError is the JSON body of a failed tool call. Error is always set; the
// remaining fields echo whatever inputs help the caller retry.
type ToolError struct {
	Error                string   `json:"error" yaml:"error"`
	ErrorType            string   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	URL                  string   `json:"url,omitempty" yaml:"url,omitempty"`
	TargetURL            string   `json:"target_url,omitempty" yaml:"target_url,omitempty"`
	Keyword              string   `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	SeedKeyword          string   `json:"seed_keyword,omitempty" yaml:"seed_keyword,omitempty"`
	SeedTopics           []string `json:"seed_topics,omitempty" yaml:"seed_topics,omitempty"`
	Location             string   `json:"location,omitempty" yaml:"location,omitempty"`
	Device               string   `json:"device,omitempty" yaml:"device,omitempty"`
	KeywordsRequested    *int     `json:"keywords_requested,omitempty" yaml:"keywords_requested,omitempty"`
	CurrentKeywordsCount *int     `json:"current_keywords_count,omitempty" yaml:"current_keywords_count,omitempty"`
	Timestamp            string   `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	APIUsed              string   `json:"api_used,omitempty" yaml:"api_used,omitempty"`
	SetupInstructions    any      `json:"setup_instructions,omitempty" yaml:"setup_instructions,omitempty"`
}

// TimestampLayout formats every date field reported by the tools.
const TimestampLayout = "2006-01-02 15:04:05"
