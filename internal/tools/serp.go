package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/serp"
	"github.com/mark3labs/mcp-go/mcp"
)

func keywordArg() mcp.ToolOption {
	return mcp.WithString("keyword", mcp.Required(), mcp.Description("Target keyword to analyze"))
}

func serpKeyArg() mcp.ToolOption {
	return mcp.WithString("api_key", mcp.Description("SerpAPI key; defaults to SERPAPI_KEY"))
}

func locationArg() mcp.ToolOption {
	return mcp.WithString("location", mcp.Description(`Geographic location for search results (e.g. "Berlin, Germany")`))
}

func targetURLArg() mcp.ToolOption {
	return mcp.WithString("target_url", mcp.Required(), mcp.Description("Your page URL to compare against the ranking pages"))
}

func (h *Handlers) serpTools() []definition {
	return []definition{
		{
			tool: mcp.NewTool("serp_data_collector",
				mcp.WithDescription("Collect Google results for a keyword through SerpAPI: organic rankings, SERP features and related searches."),
				keywordArg(), serpKeyArg(), locationArg(),
				mcp.WithString("device", mcp.Description("Device type (desktop or mobile)"), mcp.Enum("desktop", "mobile")),
			),
			handler: h.SERPDataCollector,
		},
		{
			tool: mcp.NewTool("classify_search_intent_data",
				mcp.WithDescription("Collect the SERP signals used to classify the search intent of a keyword."),
				keywordArg(), serpKeyArg(), locationArg(),
			),
			handler: h.ClassifySearchIntentData,
		},
		{
			tool: mcp.NewTool("analyze_serp_content_alignment",
				mcp.WithDescription("Collect SERP results plus the content of the top ranking pages and a target page for content alignment analysis."),
				keywordArg(), targetURLArg(), serpKeyArg(), locationArg(),
			),
			handler: h.AnalyzeSERPContentAlignment,
		},
		{
			tool: mcp.NewTool("analyze_serp_feature_opportunities",
				mcp.WithDescription("Compare the SERP features shown for a keyword with the structure of a target page."),
				keywordArg(), targetURLArg(), serpKeyArg(), locationArg(),
			),
			handler: h.AnalyzeSERPFeatureOpportunities,
		},
	}
}

func (h *Handlers) serpClient(req mcp.CallToolRequest) (*serp.Client, bool) {
	key := apiKey(req, h.deps.Config.SerpAPIKey)
	if key == "" {
		return nil, false
	}
	return serp.NewClient(h.deps.API, h.deps.Config.SerpAPIURL, key), true
}

func (h *Handlers) SERPDataCollector(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := req.RequireString("keyword")
	if err != nil {
		return argumentError(err)
	}
	q := serp.Query{
		Keyword:  keyword,
		Location: req.GetString("location", h.deps.Config.Location),
		Device:   req.GetString("device", h.deps.Config.Device),
	}

	client, ok := h.serpClient(req)
	if !ok {
		return errorResult(models.ToolError{
			Error:             "API key is required. Either provide api_key parameter or set SERPAPI_KEY environment variable.",
			Keyword:           keyword,
			Timestamp:         h.timestamp(),
			SetupInstructions: "Create a .env file with SERPAPI_KEY=your_key_here",
		})
	}

	raw, err := client.Search(ctx, q)
	var apiErr *serp.APIError
	switch {
	case errors.As(err, &apiErr):
		return errorResult(models.ToolError{
			Error:     apiErr.Error(),
			Keyword:   keyword,
			Location:  q.Location,
			Timestamp: h.timestamp(),
			APIUsed:   "SerpAPI",
		})
	case err != nil:
		return errorResult(models.ToolError{
			Error:     fmt.Sprintf("SERP collection failed: %v", err),
			ErrorType: fmt.Sprintf("%T", err),
			Keyword:   keyword,
			Location:  q.Location,
			Device:    q.Device,
			Timestamp: h.timestamp(),
			APIUsed:   "SerpAPI",
		})
	}
	return jsonResult(serp.CollectSERP(q, raw, h.deps.Now()))
}

func (h *Handlers) ClassifySearchIntentData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := req.RequireString("keyword")
	if err != nil {
		return argumentError(err)
	}
	q := serp.Query{Keyword: keyword, Location: req.GetString("location", h.deps.Config.Location)}

	client, ok := h.serpClient(req)
	if !ok {
		return errorResult(models.ToolError{
			Error:   "SerpAPI key is required for search intent classification.",
			Keyword: keyword,
		})
	}

	raw, err := client.Search(ctx, q)
	if err != nil {
		return errorResult(models.ToolError{
			Error:   serpFailure("Search intent data collection failed", err),
			Keyword: keyword,
		})
	}
	return jsonResult(serp.ClassifyIntent(q, raw, h.deps.Now()))
}

func (h *Handlers) AnalyzeSERPContentAlignment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := req.RequireString("keyword")
	if err != nil {
		return argumentError(err)
	}
	targetURL, err := req.RequireString("target_url")
	if err != nil {
		return argumentError(err)
	}
	q := serp.Query{Keyword: keyword, Location: req.GetString("location", h.deps.Config.Location)}

	client, ok := h.serpClient(req)
	if !ok {
		return errorResult(models.ToolError{
			Error:     "SerpAPI key is required. Either provide api_key parameter or set SERPAPI_KEY environment variable.",
			Keyword:   keyword,
			TargetURL: targetURL,
		})
	}

	fail := func(err error) (*mcp.CallToolResult, error) {
		return errorResult(models.ToolError{
			Error:     serpFailure("SERP content alignment analysis failed", err),
			Keyword:   keyword,
			TargetURL: targetURL,
		})
	}

	raw, err := client.Search(ctx, q)
	if err != nil {
		return fail(err)
	}
	report, err := serp.ContentAlignment(ctx, q, targetURL, raw, h.scrapePage, h.deps.Pause, h.deps.Now())
	if err != nil {
		return fail(err)
	}
	return jsonResult(report)
}

func (h *Handlers) AnalyzeSERPFeatureOpportunities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := req.RequireString("keyword")
	if err != nil {
		return argumentError(err)
	}
	targetURL, err := req.RequireString("target_url")
	if err != nil {
		return argumentError(err)
	}
	q := serp.Query{Keyword: keyword, Location: req.GetString("location", h.deps.Config.Location)}

	client, ok := h.serpClient(req)
	if !ok {
		return errorResult(models.ToolError{
			Error:     "SerpAPI key is required for SERP feature analysis.",
			Keyword:   keyword,
			TargetURL: targetURL,
		})
	}

	fail := func(err error) (*mcp.CallToolResult, error) {
		return errorResult(models.ToolError{
			Error:     serpFailure("SERP feature opportunity analysis failed", err),
			Keyword:   keyword,
			TargetURL: targetURL,
		})
	}

	raw, err := client.Search(ctx, q)
	if err != nil {
		return fail(err)
	}
	report, err := serp.FeatureOpportunities(ctx, q, targetURL, raw, h.scrapePage, h.deps.Now())
	if err != nil {
		return fail(err)
	}
	return jsonResult(report)
}

// serpFailure reports SerpAPI's own errors verbatim and prefixes the rest.
func serpFailure(prefix string, err error) string {
	var apiErr *serp.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}
