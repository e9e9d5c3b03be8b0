package models

// KeywordResearch is the keyword_research_analysis result.
type KeywordResearch struct {
	Tool                  string             `json:"tool" yaml:"tool"`
	Country               string             `json:"country" yaml:"country"`
	TotalKeywordsAnalyzed int                `json:"total_keywords_analyzed" yaml:"total_keywords_analyzed"`
	KeywordsData          []KeywordInfo      `json:"keywords_data" yaml:"keywords_data"`
	Summary               KeywordResearchSum `json:"summary" yaml:"summary"`
}

// KeywordInfo is one keyword row. Competition is passed through from the API,
// which reports it either as a label ("Low") or as a number.
type KeywordInfo struct {
	Keyword          string  `json:"keyword" yaml:"keyword"`
	SearchVolume     int     `json:"search_volume" yaml:"search_volume"`
	CPC              float64 `json:"cpc" yaml:"cpc"`
	Competition      any     `json:"competition" yaml:"competition"`
	Trend            any     `json:"trend" yaml:"trend"`
	OpportunityScore float64 `json:"opportunity_score" yaml:"opportunity_score"`
}

type KeywordResearchSum struct {
	HighVolumeKeywords          []string            `json:"high_volume_keywords" yaml:"high_volume_keywords"`
	LowCompetitionOpportunities []string            `json:"low_competition_opportunities" yaml:"low_competition_opportunities"`
	HighCPCCommercialTerms      []string            `json:"high_cpc_commercial_terms" yaml:"high_cpc_commercial_terms"`
	RecommendedTargets          []RecommendedTarget `json:"recommended_targets" yaml:"recommended_targets"`
}

type RecommendedTarget struct {
	Keyword string  `json:"keyword" yaml:"keyword"`
	Score   float64 `json:"score" yaml:"score"`
	Volume  int     `json:"volume" yaml:"volume"`
	CPC     float64 `json:"cpc" yaml:"cpc"`
}

// RelatedKeyword is the short keyword row used by discovery and gap analysis.
type RelatedKeyword struct {
	Keyword      string  `json:"keyword" yaml:"keyword"`
	SearchVolume int     `json:"search_volume" yaml:"search_volume"`
	CPC          float64 `json:"cpc" yaml:"cpc"`
	Competition  any     `json:"competition" yaml:"competition"`
}

// RelatedKeywords is the related_keywords_discovery result.
type RelatedKeywords struct {
	Tool                 string               `json:"tool" yaml:"tool"`
	SeedKeyword          string               `json:"seed_keyword" yaml:"seed_keyword"`
	Country              string               `json:"country" yaml:"country"`
	RelatedKeywords      []RelatedKeyword     `json:"related_keywords" yaml:"related_keywords"`
	KeywordCategories    KeywordCategories    `json:"keyword_categories" yaml:"keyword_categories"`
	ContentOpportunities []ContentOpportunity `json:"content_opportunities" yaml:"content_opportunities"`
}

type KeywordCategories struct {
	QuestionKeywords      []RelatedKeyword `json:"question_keywords" yaml:"question_keywords"`
	LongTailOpportunities []RelatedKeyword `json:"long_tail_opportunities" yaml:"long_tail_opportunities"`
	CommercialIntent      []RelatedKeyword `json:"commercial_intent" yaml:"commercial_intent"`
	InformationalIntent   []RelatedKeyword `json:"informational_intent" yaml:"informational_intent"`
}

type ContentOpportunity struct {
	ContentType string   `json:"content_type" yaml:"content_type"`
	Opportunity string   `json:"opportunity" yaml:"opportunity"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// OpportunityScores is the keyword_opportunity_scorer result.
type OpportunityScores struct {
	Tool           string          `json:"tool" yaml:"tool"`
	Country        string          `json:"country" yaml:"country"`
	TotalKeywords  int             `json:"total_keywords" yaml:"total_keywords"`
	ScoredKeywords []ScoredKeyword `json:"scored_keywords" yaml:"scored_keywords"`
	PriorityTiers  PriorityTiers   `json:"priority_tiers" yaml:"priority_tiers"`
}

type ScoredKeyword struct {
	Keyword          string  `json:"keyword" yaml:"keyword"`
	SearchVolume     int     `json:"search_volume" yaml:"search_volume"`
	CPC              float64 `json:"cpc" yaml:"cpc"`
	Competition      any     `json:"competition" yaml:"competition"`
	OpportunityScore float64 `json:"opportunity_score" yaml:"opportunity_score"`
	PriorityTier     string  `json:"priority_tier" yaml:"priority_tier"`
	Reasoning        string  `json:"reasoning" yaml:"reasoning"`
}

type PriorityTiers struct {
	Critical []ScoredKeyword `json:"critical_priority" yaml:"critical_priority"`
	High     []ScoredKeyword `json:"high_priority" yaml:"high_priority"`
	Medium   []ScoredKeyword `json:"medium_priority" yaml:"medium_priority"`
	Low      []ScoredKeyword `json:"low_priority" yaml:"low_priority"`
}

// KeywordGaps is the competitor_keyword_gap_analysis result. When no gaps exist
// only Tool, Message and CurrentKeywordsCount are set.
type KeywordGaps struct {
	Tool                      string              `json:"tool" yaml:"tool"`
	Message                   string              `json:"message,omitempty" yaml:"message,omitempty"`
	CurrentKeywordsCount      int                 `json:"current_keywords_count" yaml:"current_keywords_count"`
	GapOpportunitiesFound     *int                `json:"gap_opportunities_found,omitempty" yaml:"gap_opportunities_found,omitempty"`
	AnalyzedGaps              *int                `json:"analyzed_gaps,omitempty" yaml:"analyzed_gaps,omitempty"`
	KeywordGapList            []GapKeyword        `json:"keyword_gaps,omitempty" yaml:"keyword_gaps,omitempty"`
	HighOpportunityGaps       []GapKeyword        `json:"high_opportunity_gaps,omitempty" yaml:"high_opportunity_gaps,omitempty"`
	ContentGapRecommendations []GapRecommendation `json:"content_gap_recommendations,omitempty" yaml:"content_gap_recommendations,omitempty"`
}

type GapKeyword struct {
	Keyword      string  `json:"keyword" yaml:"keyword"`
	SearchVolume int     `json:"search_volume" yaml:"search_volume"`
	CPC          float64 `json:"cpc" yaml:"cpc"`
	Competition  any     `json:"competition" yaml:"competition"`
	GapPriority  string  `json:"gap_priority" yaml:"gap_priority"`
}

type GapRecommendation struct {
	Recommendation         string   `json:"recommendation" yaml:"recommendation"`
	TargetKeywords         []string `json:"target_keywords" yaml:"target_keywords"`
	EstimatedMonthlyVolume int      `json:"estimated_monthly_volume" yaml:"estimated_monthly_volume"`
}

// APITestResult is the test_keywords_everywhere_api result.
type APITestResult struct {
	Status      string `json:"status" yaml:"status"`
	Message     string `json:"message" yaml:"message"`
	APIKeyValid *bool  `json:"api_key_valid,omitempty" yaml:"api_key_valid,omitempty"`
	TestResult  any    `json:"test_result,omitempty" yaml:"test_result,omitempty"`
}
