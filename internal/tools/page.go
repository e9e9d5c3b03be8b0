package tools

import (
	"context"
	"fmt"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/pagespeed"
	"github.com/dtnitsch/seo-web-parser/pkg/technical"
	"github.com/mark3labs/mcp-go/mcp"
)

func urlArg(description string) mcp.ToolOption {
	return mcp.WithString("url", mcp.Required(), mcp.Description(description))
}

func (h *Handlers) pageTools() []definition {
	return []definition{
		{
			tool: mcp.NewTool("scrape_seo_data",
				mcp.WithDescription("Extract comprehensive SEO data from a webpage: meta tags, headings, links, schema markup, social tags and content."),
				urlArg("URL of the page to scrape"),
			),
			handler: h.ScrapeSEOData,
		},
		{
			tool: mcp.NewTool("collect_server_headers",
				mcp.WithDescription("Collect server response headers relevant to technical SEO, including security and caching headers."),
				urlArg("URL to analyze server headers"),
			),
			handler: h.CollectServerHeaders,
		},
		{
			tool: mcp.NewTool("analyze_redirect_chain",
				mcp.WithDescription("Analyze the redirect chain of a URL: every hop, redirect types and common issues."),
				urlArg("URL to analyze for redirect chains"),
			),
			handler: h.AnalyzeRedirectChain,
		},
		{
			tool: mcp.NewTool("validate_structured_data",
				mcp.WithDescription("Extract JSON-LD, microdata and RDFa from a page and check rich results eligibility against Schema.org requirements."),
				urlArg("URL to validate structured data"),
			),
			handler: h.ValidateStructuredData,
		},
		{
			tool: mcp.NewTool("page_speed_metrics",
				mcp.WithDescription("Collect Core Web Vitals and Lighthouse scores using the Google PageSpeed Insights API."),
				urlArg("URL to analyze for performance metrics"),
				mcp.WithString("api_key", mcp.Description("Google PageSpeed Insights API key; defaults to GOOGLE_PAGESPEED_KEY")),
				mcp.WithString("device", mcp.Description("Device type (desktop or mobile)"), mcp.Enum("desktop", "mobile")),
			),
			handler: h.PageSpeedMetrics,
		},
	}
}

func (h *Handlers) ScrapeSEOData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return argumentError(err)
	}

	page, err := h.scrapePage(ctx, url)
	if err != nil {
		return errorResult(models.ToolError{Error: fmt.Sprintf("Failed to scrape %s: %v", url, err)})
	}
	return jsonResult(page)
}

func (h *Handlers) CollectServerHeaders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return argumentError(err)
	}

	headers, err := technical.CollectHeaders(ctx, h.deps.Fetcher, url)
	if err != nil {
		return errorResult(models.ToolError{Error: fmt.Sprintf("Header collection failed: %v", err)})
	}
	return jsonResult(headers)
}

func (h *Handlers) AnalyzeRedirectChain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return argumentError(err)
	}

	analysis, err := technical.AnalyzeRedirects(ctx, h.deps.Fetcher, url)
	if err != nil {
		return errorResult(models.ToolError{Error: fmt.Sprintf("Redirect analysis failed: %v", err)})
	}
	return jsonResult(analysis)
}

func (h *Handlers) ValidateStructuredData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return argumentError(err)
	}

	doc, err := h.deps.Fetcher.GetDocument(ctx, url)
	if err != nil {
		return errorResult(models.ToolError{Error: fmt.Sprintf("Structured data validation failed: %v", err)})
	}

	report := h.deps.Validator.Validate(doc)
	return jsonResult(&models.StructuredDataValidation{
		StructuredDataReport: *report,
		URL:                  url,
		TestDate:             h.timestamp(),
	})
}

func (h *Handlers) PageSpeedMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return argumentError(err)
	}
	device := req.GetString("device", "desktop")

	key := apiKey(req, h.deps.Config.PageSpeedKey)
	if key == "" {
		return errorResult(models.ToolError{
			Error:             "Google PageSpeed API key is required. Either provide api_key parameter or set GOOGLE_PAGESPEED_KEY environment variable.",
			URL:               url,
			Timestamp:         h.timestamp(),
			SetupInstructions: "Create a .env file with GOOGLE_PAGESPEED_KEY=your_key_here",
		})
	}

	client := pagespeed.NewClient(h.deps.API, h.deps.Config.PageSpeedURL, key)
	report, err := client.Run(ctx, url, device)
	if err != nil {
		return errorResult(models.ToolError{Error: fmt.Sprintf("Page speed analysis failed: %v", err)})
	}
	return jsonResult(report)
}
