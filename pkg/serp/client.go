// Package serp queries Google results through SerpAPI and reshapes them into
// the SERP, intent, alignment and feature-opportunity reports.
package serp

import (
	"context"
	"fmt"
	"net/url"

	"resty.dev/v3"
)

// Query is one Google search. Device is only sent when set.
type Query struct {
	Keyword  string
	Location string
	Device   string
}

// APIError is an error reported by SerpAPI itself rather than the transport.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "SerpAPI error: " + e.Message
}

type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
}

func NewClient(http *resty.Client, endpoint, apiKey string) *Client {
	return &Client{http: http, endpoint: endpoint, apiKey: apiKey}
}

// Search returns the raw SerpAPI response for q.
func (c *Client) Search(ctx context.Context, q Query) (map[string]any, error) {
	params := url.Values{
		"q":        {q.Keyword},
		"api_key":  {c.apiKey},
		"engine":   {"google"},
		"location": {q.Location},
		"hl":       {"en"},
		"gl":       {"us"},
		"num":      {"10"},
	}
	if q.Device != "" {
		params.Set("device", q.Device)
	}

	var result, failure map[string]any
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&result).
		SetError(&failure).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to call SerpAPI: %w", err)
	}

	if resp.IsError() {
		if msg, ok := failure["error"]; ok {
			return nil, &APIError{Message: fmt.Sprint(msg)}
		}
		return nil, &APIError{Message: resp.Status()}
	}
	if msg, ok := result["error"]; ok {
		return nil, &APIError{Message: fmt.Sprint(msg)}
	}
	if result == nil {
		result = map[string]any{}
	}
	return result, nil
}
