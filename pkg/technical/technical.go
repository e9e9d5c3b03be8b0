// Package technical reports the HTTP-level SEO signals of a URL: response
// headers and the redirect chain leading to the final page.
package technical

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/fetcher"
)

const (
	notSet       = "Not set"
	notDisclosed = "Not disclosed"

	// More hops than this is reported as an issue.
	maxHealthyRedirects = 3
)

var redirectNames = map[int]string{
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found (Temporary)",
	303: "See Other",
	304: "Not Modified",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
}

// Tracer follows a request through its redirects.
type Tracer interface {
	Trace(ctx context.Context, method, url string) (*fetcher.Trace, error)
}

// ClassifyRedirect names a redirect status code.
func ClassifyRedirect(statusCode int) string {
	if name, ok := redirectNames[statusCode]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", statusCode)
}

// CollectHeaders issues a HEAD request against url, following redirects.
func CollectHeaders(ctx context.Context, t Tracer, url string) (*models.ServerHeaders, error) {
	trace, err := t.Trace(ctx, http.MethodHead, url)
	if err != nil {
		return nil, fmt.Errorf("failed to collect headers: %w", err)
	}
	return HeadersFromTrace(url, trace), nil
}

// HeadersFromTrace builds the header report for the final response of trace.
func HeadersFromTrace(url string, trace *fetcher.Trace) *models.ServerHeaders {
	h := trace.Header
	get := func(name, def string) string {
		if v := h.Get(name); v != "" {
			return v
		}
		return def
	}

	chain := make([]string, 0, len(trace.Hops)+1)
	types := make([]int, 0, len(trace.Hops))
	for _, hop := range trace.Hops {
		chain = append(chain, hop.URL)
		types = append(types, hop.StatusCode)
	}
	chain = append(chain, trace.FinalURL)

	return &models.ServerHeaders{
		URL:        url,
		StatusCode: trace.StatusCode,
		Headers:    flattenHeader(h),
		ServerAnalysis: models.ServerAnalysis{
			ServerSoftware:  get("Server", notDisclosed),
			XRobotsTag:      get("X-Robots-Tag", notSet),
			CacheControl:    get("Cache-Control", notSet),
			Expires:         get("Expires", notSet),
			ETag:            get("ETag", notSet),
			LastModified:    get("Last-Modified", notSet),
			ContentType:     get("Content-Type", notSet),
			ContentEncoding: get("Content-Encoding", notSet),
			SecurityHeaders: models.SecurityHeaders{
				HSTS:                get("Strict-Transport-Security", notSet),
				CSP:                 get("Content-Security-Policy", notSet),
				XFrameOptions:       get("X-Frame-Options", notSet),
				XContentTypeOptions: get("X-Content-Type-Options", notSet),
				ReferrerPolicy:      get("Referrer-Policy", notSet),
			},
		},
		RedirectAnalysis: models.RedirectSummary{
			RedirectCount: len(trace.Hops),
			RedirectChain: chain,
			RedirectTypes: types,
		},
	}
}

// AnalyzeRedirects issues a GET against url and reports every redirect hop.
func AnalyzeRedirects(ctx context.Context, t Tracer, url string) (*models.RedirectAnalysis, error) {
	trace, err := t.Trace(ctx, http.MethodGet, url)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze redirects: %w", err)
	}
	return RedirectsFromTrace(url, trace), nil
}

// RedirectsFromTrace turns trace into a step-by-step redirect report with issues.
func RedirectsFromTrace(url string, trace *fetcher.Trace) *models.RedirectAnalysis {
	analysis := &models.RedirectAnalysis{
		OriginalURL:    url,
		RedirectChain:  []models.RedirectStep{},
		TotalRedirects: len(trace.Hops),
		RedirectTypes:  []int{},
		RedirectIssues: []string{},
		FinalURL:       trace.FinalURL,
		RedirectTime:   trace.Elapsed.Seconds(),
	}

	for i, hop := range trace.Hops {
		responseTime := hop.Header.Get("X-Response-Time")
		if responseTime == "" {
			responseTime = "Unknown"
		}
		analysis.RedirectChain = append(analysis.RedirectChain, models.RedirectStep{
			Step:           i + 1,
			FromURL:        hop.URL,
			StatusCode:     hop.StatusCode,
			RedirectType:   ClassifyRedirect(hop.StatusCode),
			LocationHeader: hop.Location,
			ResponseTime:   responseTime,
		})
		analysis.RedirectTypes = append(analysis.RedirectTypes, hop.StatusCode)
	}

	analysis.RedirectIssues = redirectIssues(analysis)
	return analysis
}

func redirectIssues(a *models.RedirectAnalysis) []string {
	issues := []string{}
	if a.TotalRedirects > maxHealthyRedirects {
		issues = append(issues, fmt.Sprintf("Too many redirects (>%d)", maxHealthyRedirects))
	}
	if a.TotalRedirects == 0 {
		return issues
	}

	seen := make(map[string]bool, len(a.RedirectChain))
	for _, step := range a.RedirectChain {
		if seen[step.FromURL] {
			issues = append(issues, "Redirect loop detected")
			break
		}
		seen[step.FromURL] = true
	}

	for _, code := range a.RedirectTypes[1:] {
		if code != a.RedirectTypes[0] {
			issues = append(issues, "Mixed redirect types")
			break
		}
	}
	return issues
}

// flattenHeader joins repeated header values with ", ".
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}
