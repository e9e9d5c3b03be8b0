package tools

import (
	"context"
	"fmt"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/keywords"
	"github.com/mark3labs/mcp-go/mcp"
)

func keKeyArg() mcp.ToolOption {
	return mcp.WithString("api_key", mcp.Description("Keywords Everywhere API key; defaults to KEYWORDS_EVERYWHERE_API_KEY"))
}

func countryArg() mcp.ToolOption {
	return mcp.WithString("country", mcp.Description("Country code for search data (US, UK, DE, ...)"))
}

func stringsArg(name, description string, opts ...mcp.PropertyOption) mcp.ToolOption {
	opts = append(opts, mcp.Description(description), mcp.Items(map[string]any{"type": "string"}))
	return mcp.WithArray(name, opts...)
}

func (h *Handlers) keywordTools() []definition {
	return []definition{
		{
			tool: mcp.NewTool("keyword_research_analysis",
				mcp.WithDescription("Get search volume, CPC and competition for keywords, with an opportunity score and recommended targets."),
				stringsArg("keywords", "Keywords to analyze (max 1000 per request)", mcp.Required()),
				countryArg(), keKeyArg(),
			),
			handler: h.KeywordResearchAnalysis,
		},
		{
			tool: mcp.NewTool("related_keywords_discovery",
				mcp.WithDescription("Discover related keywords for a seed keyword, grouped by intent, with content opportunities."),
				mcp.WithString("keyword", mcp.Required(), mcp.Description("Seed keyword to find related terms for")),
				countryArg(), keKeyArg(),
			),
			handler: h.RelatedKeywordsDiscovery,
		},
		{
			tool: mcp.NewTool("keyword_opportunity_scorer",
				mcp.WithDescription("Score keywords by volume, commercial value and competition and sort them into priority tiers."),
				stringsArg("keywords", "Keywords to score", mcp.Required()),
				countryArg(),
				stringsArg("business_relevance_keywords", "Terms that mark a keyword as relevant to the business"),
				keKeyArg(),
			),
			handler: h.KeywordOpportunityScorer,
		},
		{
			tool: mcp.NewTool("competitor_keyword_gap_analysis",
				mcp.WithDescription("Find related keywords for seed topics that are missing from the keywords you already rank for."),
				stringsArg("current_keywords", "Keywords you currently rank for", mcp.Required()),
				stringsArg("seed_topics", "Topic areas to explore for gaps", mcp.Required()),
				countryArg(), keKeyArg(),
			),
			handler: h.CompetitorKeywordGapAnalysis,
		},
		{
			tool: mcp.NewTool("test_keywords_everywhere_api",
				mcp.WithDescription("Test the Keywords Everywhere API connection and key validity."),
				keKeyArg(),
			),
			handler: h.TestKeywordsEverywhereAPI,
		},
	}
}

func (h *Handlers) keywordClient(req mcp.CallToolRequest) *keywords.Client {
	opts := []keywords.Option{keywords.WithLogger(h.deps.Logger)}
	if h.deps.KeywordCache != nil {
		opts = append(opts, keywords.WithCache(h.deps.KeywordCache))
	}
	key := apiKey(req, h.deps.Config.KeywordsEverywhereKey)
	return keywords.NewClient(h.deps.API, h.deps.Config.KeywordsEverywhereURL, key, opts...)
}

func (h *Handlers) KeywordResearchAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kws, err := requireStrings(req, "keywords")
	if err != nil {
		return argumentError(err)
	}
	country := req.GetString("country", h.deps.Config.Country)

	report, err := h.keywordClient(req).Research(ctx, kws, country)
	if err != nil {
		n := len(kws)
		return errorResult(models.ToolError{
			Error:             fmt.Sprintf("Keyword research analysis failed: %v", err),
			KeywordsRequested: &n,
		})
	}
	return jsonResult(report)
}

func (h *Handlers) RelatedKeywordsDiscovery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed, err := req.RequireString("keyword")
	if err != nil {
		return argumentError(err)
	}
	country := req.GetString("country", h.deps.Config.Country)

	report, err := h.keywordClient(req).Discover(ctx, seed, country)
	if err != nil {
		return errorResult(models.ToolError{
			Error:       fmt.Sprintf("Related keywords discovery failed: %v", err),
			SeedKeyword: seed,
		})
	}
	return jsonResult(report)
}

func (h *Handlers) KeywordOpportunityScorer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kws, err := requireStrings(req, "keywords")
	if err != nil {
		return argumentError(err)
	}
	country := req.GetString("country", h.deps.Config.Country)
	business := req.GetStringSlice("business_relevance_keywords", []string{})

	report, err := h.keywordClient(req).Score(ctx, kws, country, business)
	if err != nil {
		n := len(kws)
		return errorResult(models.ToolError{
			Error:             fmt.Sprintf("Keyword opportunity scoring failed: %v", err),
			KeywordsRequested: &n,
		})
	}
	return jsonResult(report)
}

func (h *Handlers) CompetitorKeywordGapAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current, err := requireStrings(req, "current_keywords")
	if err != nil {
		return argumentError(err)
	}
	topics, err := requireStrings(req, "seed_topics")
	if err != nil {
		return argumentError(err)
	}
	country := req.GetString("country", h.deps.Config.Country)

	report, err := h.keywordClient(req).Gaps(ctx, current, topics, country)
	if err != nil {
		n := len(current)
		return errorResult(models.ToolError{
			Error:                fmt.Sprintf("Competitor keyword gap analysis failed: %v", err),
			CurrentKeywordsCount: &n,
			SeedTopics:           topics,
		})
	}
	return jsonResult(report)
}

// TestKeywordsEverywhereAPI reports connection problems in a successful
// result; the status field carries the verdict.
func (h *Handlers) TestKeywordsEverywhereAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.keywordClient(req).TestConnection(ctx))
}
