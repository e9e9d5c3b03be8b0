package models

// SEOPage is everything scrape_seo_data reports about one page.
type SEOPage struct {
	URL            string              `json:"url" yaml:"url"`
	ExtractionDate string              `json:"extraction_date" yaml:"extraction_date"`
	Title          *string             `json:"title" yaml:"title"`
	MetaTags       map[string]string   `json:"meta_tags" yaml:"meta_tags"`
	Headers        map[string][]string `json:"headers" yaml:"headers"`
	CanonicalURL   *string             `json:"canonical_url" yaml:"canonical_url"`
	RobotsMeta     *string             `json:"robots_meta" yaml:"robots_meta"`
	MetaViewport   *string             `json:"meta_viewport" yaml:"meta_viewport"`

	MainContent string `json:"main_content" yaml:"main_content"`
	FullText    string `json:"full_text" yaml:"full_text"`
	WordCount   int    `json:"word_count" yaml:"word_count"`

	InternalLinks []Link `json:"internal_links" yaml:"internal_links"`
	ExternalLinks []Link `json:"external_links" yaml:"external_links"`

	SchemaMarkup []any             `json:"schema_markup" yaml:"schema_markup"`
	OpenGraph    map[string]string `json:"open_graph" yaml:"open_graph"`
	TwitterCards map[string]string `json:"twitter_cards" yaml:"twitter_cards"`

	Hreflang    []Hreflang `json:"hreflang" yaml:"hreflang"`
	MetaRefresh *string    `json:"meta_refresh" yaml:"meta_refresh"`
	BaseHref    *string    `json:"base_href" yaml:"base_href"`

	Meta PageMetadata `json:"page_metadata" yaml:"page_metadata"`

	// Set only when markdown output is requested.
	MainContentMarkdown string `json:"main_content_markdown,omitempty" yaml:"main_content_markdown,omitempty"`
}

// Link is one anchor with an href.
type Link struct {
	URL        string   `json:"url" yaml:"url"`
	AnchorText string   `json:"anchor_text" yaml:"anchor_text"`
	Title      string   `json:"title" yaml:"title"`
	Rel        []string `json:"rel" yaml:"rel"`
}

// Hreflang is one <link rel="alternate" hreflang> entry.
type Hreflang struct {
	Hreflang string `json:"hreflang" yaml:"hreflang"`
	Href     string `json:"href" yaml:"href"`
}
