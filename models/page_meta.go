package models

// PageMetadata is enrichment layered on top of the raw SEO fields: detected
// language plus what go-readability can tell about the article.
type PageMetadata struct {
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"` // ISO-639-1 if possible (e.g. "en")
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	// Readability enrichment (from go-readability)
	Author        string `json:"author,omitempty" yaml:"author,omitempty"`
	Excerpt       string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	SiteName      string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	PublishedTime string `json:"published_time,omitempty" yaml:"published_time,omitempty"` // ISO-8601 date
	Favicon       string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	Image         string `json:"image,omitempty" yaml:"image,omitempty"` // main image URL
}
