package models

// SERPData is the serp_data_collector result.
type SERPData struct {
	Keyword         string          `json:"keyword" yaml:"keyword"`
	SearchDate      string          `json:"search_date" yaml:"search_date"`
	Location        string          `json:"location" yaml:"location"`
	Device          string          `json:"device" yaml:"device"`
	TotalResults    any             `json:"total_results" yaml:"total_results"`
	SearchTime      any             `json:"search_time" yaml:"search_time"`
	Results         []OrganicResult `json:"results" yaml:"results"`
	SERPFeatures    SERPFeatures    `json:"serp_features" yaml:"serp_features"`
	RelatedSearches []string        `json:"related_searches" yaml:"related_searches"`
	SearchMetadata  SearchMetadata  `json:"search_metadata" yaml:"search_metadata"`
}

type OrganicResult struct {
	Position       any    `json:"position" yaml:"position"`
	Title          string `json:"title" yaml:"title"`
	URL            string `json:"url" yaml:"url"`
	DisplayedLink  string `json:"displayed_link" yaml:"displayed_link"`
	Snippet        string `json:"snippet" yaml:"snippet"`
	CachedPageLink string `json:"cached_page_link" yaml:"cached_page_link"`
	RichSnippet    any    `json:"rich_snippet" yaml:"rich_snippet"`
	Sitelinks      any    `json:"sitelinks" yaml:"sitelinks"`
}

// SERPFeatures only carries the features present on the results page.
type SERPFeatures struct {
	AnswerBox      *AnswerBox      `json:"answer_box,omitempty" yaml:"answer_box,omitempty"`
	PeopleAlsoAsk  []PeopleAlsoAsk `json:"people_also_ask,omitempty" yaml:"people_also_ask,omitempty"`
	KnowledgeGraph *KnowledgeGraph `json:"knowledge_graph,omitempty" yaml:"knowledge_graph,omitempty"`
}

type AnswerBox struct {
	Type          string `json:"type" yaml:"type"`
	Title         string `json:"title" yaml:"title"`
	Snippet       string `json:"snippet" yaml:"snippet"`
	Link          string `json:"link" yaml:"link"`
	DisplayedLink string `json:"displayed_link" yaml:"displayed_link"`
	Source        any    `json:"source" yaml:"source"`
}

type PeopleAlsoAsk struct {
	Question      string `json:"question" yaml:"question"`
	Snippet       string `json:"snippet" yaml:"snippet"`
	Title         string `json:"title" yaml:"title"`
	Link          string `json:"link" yaml:"link"`
	DisplayedLink string `json:"displayed_link" yaml:"displayed_link"`
}

type KnowledgeGraph struct {
	Title                    string `json:"title" yaml:"title"`
	Type                     string `json:"type" yaml:"type"`
	Description              string `json:"description" yaml:"description"`
	Source                   any    `json:"source" yaml:"source"`
	Attributes               any    `json:"attributes" yaml:"attributes"`
	KGMID                    string `json:"kgmid" yaml:"kgmid"`
	KnowledgeGraphSearchLink string `json:"knowledge_graph_search_link" yaml:"knowledge_graph_search_link"`
}

type SearchMetadata struct {
	Status              any    `json:"status" yaml:"status"`
	TotalResults        any    `json:"total_results" yaml:"total_results"`
	TimeTaken           any    `json:"time_taken" yaml:"time_taken"`
	EngineUsed          string `json:"engine_used" yaml:"engine_used"`
	OrganicResultsState any    `json:"organic_results_state" yaml:"organic_results_state"`
	QueryDisplayed      any    `json:"query_displayed" yaml:"query_displayed"`
	DetectedLocation    any    `json:"detected_location" yaml:"detected_location"`
}

// SearchIntentData is the classify_search_intent_data result.
type SearchIntentData struct {
	Keyword                string                    `json:"keyword" yaml:"keyword"`
	AnalysisDate           string                    `json:"analysis_date" yaml:"analysis_date"`
	Location               string                    `json:"location" yaml:"location"`
	SERPFeatures           map[string]map[string]any `json:"serp_features" yaml:"serp_features"`
	OrganicResultsAnalysis []IntentResult            `json:"organic_results_analysis" yaml:"organic_results_analysis"`
	RelatedSearches        []string                  `json:"related_searches" yaml:"related_searches"`
	SearchMetadata         IntentSearchMetadata      `json:"search_metadata" yaml:"search_metadata"`
}

type IntentResult struct {
	Position       any            `json:"position" yaml:"position"`
	URL            string         `json:"url" yaml:"url"`
	Domain         string         `json:"domain" yaml:"domain"`
	Title          string         `json:"title" yaml:"title"`
	Snippet        string         `json:"snippet" yaml:"snippet"`
	URLSignals     URLSignals     `json:"url_signals" yaml:"url_signals"`
	ContentSignals ContentSignals `json:"content_signals" yaml:"content_signals"`
}

type URLSignals struct {
	HasShopPath           bool `json:"has_shop_path" yaml:"has_shop_path"`
	HasBlogPath           bool `json:"has_blog_path" yaml:"has_blog_path"`
	HasHowTo              bool `json:"has_how_to" yaml:"has_how_to"`
	IsEcommerceDomain     bool `json:"is_ecommerce_domain" yaml:"is_ecommerce_domain"`
	IsInformationalDomain bool `json:"is_informational_domain" yaml:"is_informational_domain"`
}

type ContentSignals struct {
	TitleHasHowTo   bool `json:"title_has_how_to" yaml:"title_has_how_to"`
	TitleHasBest    bool `json:"title_has_best" yaml:"title_has_best"`
	TitleHasBuy     bool `json:"title_has_buy" yaml:"title_has_buy"`
	TitleHasWhatIs  bool `json:"title_has_what_is" yaml:"title_has_what_is"`
	SnippetHasSteps bool `json:"snippet_has_steps" yaml:"snippet_has_steps"`
	SnippetHasPrice bool `json:"snippet_has_price" yaml:"snippet_has_price"`
}

type IntentSearchMetadata struct {
	TotalResults   any `json:"total_results" yaml:"total_results"`
	SearchTime     any `json:"search_time" yaml:"search_time"`
	QueryDisplayed any `json:"query_displayed" yaml:"query_displayed"`
}

// ContentAlignment is the analyze_serp_content_alignment result.
type ContentAlignment struct {
	Keyword        string                  `json:"keyword" yaml:"keyword"`
	AnalysisDate   string                  `json:"analysis_date" yaml:"analysis_date"`
	SERPMetadata   AlignmentSERPMetadata   `json:"serp_metadata" yaml:"serp_metadata"`
	TargetPage     PageSummary             `json:"target_page" yaml:"target_page"`
	TopCompetitors []PageSummary           `json:"top_10_competitors" yaml:"top_10_competitors"`
	SERPFeatures   map[string]any          `json:"serp_features" yaml:"serp_features"`
	DatasetSummary AlignmentDatasetSummary `json:"dataset_summary" yaml:"dataset_summary"`
}

type AlignmentSERPMetadata struct {
	Location     string `json:"location" yaml:"location"`
	TotalResults any    `json:"total_results" yaml:"total_results"`
}

// PageSummary is the scraped view of one ranking or target page. When scraping
// failed only the identifying fields and Error are set.
type PageSummary struct {
	SERPPosition       any                 `json:"serp_position,omitempty" yaml:"serp_position,omitempty"`
	URL                string              `json:"url" yaml:"url"`
	Error              string              `json:"error,omitempty" yaml:"error,omitempty"`
	Title              *string             `json:"title,omitempty" yaml:"title,omitempty"`
	SERPTitle          *string             `json:"serp_title,omitempty" yaml:"serp_title,omitempty"`
	MetaDescription    *string             `json:"meta_description,omitempty" yaml:"meta_description,omitempty"`
	SERPSnippet        *string             `json:"serp_snippet,omitempty" yaml:"serp_snippet,omitempty"`
	MainContent        *string             `json:"main_content,omitempty" yaml:"main_content,omitempty"`
	FullText           *string             `json:"full_text,omitempty" yaml:"full_text,omitempty"`
	WordCount          *int                `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	Headings           map[string][]string `json:"headings,omitempty" yaml:"headings,omitempty"`
	SchemaMarkup       []any               `json:"schema_markup,omitempty" yaml:"schema_markup,omitempty"`
	InternalLinksCount *int                `json:"internal_links_count,omitempty" yaml:"internal_links_count,omitempty"`
	ExternalLinksCount *int                `json:"external_links_count,omitempty" yaml:"external_links_count,omitempty"`
}

type AlignmentDatasetSummary struct {
	TotalCompetitorsFound  int                `json:"total_competitors_found" yaml:"total_competitors_found"`
	SuccessfulScrapes      int                `json:"successful_scrapes" yaml:"successful_scrapes"`
	TargetPageScraped      bool               `json:"target_page_scraped" yaml:"target_page_scraped"`
	AvgCompetitorWordCount float64            `json:"avg_competitor_word_count" yaml:"avg_competitor_word_count"`
	AvgCompetitorHeadings  map[string]float64 `json:"avg_competitor_headings" yaml:"avg_competitor_headings"`
}

// FeatureOpportunities is the analyze_serp_feature_opportunities result.
type FeatureOpportunities struct {
	Keyword             string                    `json:"keyword" yaml:"keyword"`
	TargetURL           string                    `json:"target_url" yaml:"target_url"`
	AnalysisDate        string                    `json:"analysis_date" yaml:"analysis_date"`
	Location            string                    `json:"location" yaml:"location"`
	CurrentSERPFeatures map[string]map[string]any `json:"current_serp_features" yaml:"current_serp_features"`
	TargetPageStructure TargetPageStructure       `json:"target_page_structure" yaml:"target_page_structure"`
	OpportunitySignals  map[string]any            `json:"opportunity_signals" yaml:"opportunity_signals"`
}

// TargetPageStructure holds either the structural analysis or Error.
type TargetPageStructure struct {
	Error                 string            `json:"error,omitempty" yaml:"error,omitempty"`
	ContentStructure      *ContentStructure `json:"content_structure,omitempty" yaml:"content_structure,omitempty"`
	HeadingStructure      *HeadingStructure `json:"heading_structure,omitempty" yaml:"heading_structure,omitempty"`
	SchemaAnalysis        *SchemaAnalysis   `json:"schema_analysis,omitempty" yaml:"schema_analysis,omitempty"`
	MetaDescriptionLength *int              `json:"meta_description_length,omitempty" yaml:"meta_description_length,omitempty"`
	TitleLength           *int              `json:"title_length,omitempty" yaml:"title_length,omitempty"`
}

type ContentStructure struct {
	WordCount        int  `json:"word_count" yaml:"word_count"`
	HasQuestions     bool `json:"has_questions" yaml:"has_questions"`
	QuestionCount    int  `json:"question_count" yaml:"question_count"`
	HasNumberedLists bool `json:"has_numbered_lists" yaml:"has_numbered_lists"`
	HasBulletPoints  bool `json:"has_bullet_points" yaml:"has_bullet_points"`
	HasTables        bool `json:"has_tables" yaml:"has_tables"`
	ParagraphCount   int  `json:"paragraph_count" yaml:"paragraph_count"`
	HasStepByStep    bool `json:"has_step_by_step" yaml:"has_step_by_step"`
}

type HeadingStructure struct {
	H1Count            int  `json:"h1_count" yaml:"h1_count"`
	H2Count            int  `json:"h2_count" yaml:"h2_count"`
	H3Count            int  `json:"h3_count" yaml:"h3_count"`
	HasFAQHeadings     bool `json:"has_faq_headings" yaml:"has_faq_headings"`
	HasHowToHeadings   bool `json:"has_how_to_headings" yaml:"has_how_to_headings"`
	HeadingAsQuestions int  `json:"heading_as_questions" yaml:"heading_as_questions"`
}

type SchemaAnalysis struct {
	SchemaTypesPresent    []string `json:"schema_types_present" yaml:"schema_types_present"`
	HasArticleSchema      bool     `json:"has_article_schema" yaml:"has_article_schema"`
	HasFAQSchema          bool     `json:"has_faq_schema" yaml:"has_faq_schema"`
	HasHowToSchema        bool     `json:"has_howto_schema" yaml:"has_howto_schema"`
	HasBreadcrumbSchema   bool     `json:"has_breadcrumb_schema" yaml:"has_breadcrumb_schema"`
	HasOrganizationSchema bool     `json:"has_organization_schema" yaml:"has_organization_schema"`
}
