package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxRedirects bounds how many hops Trace follows.
const MaxRedirects = 10

// Hop is one redirect response on the way to the final URL.
type Hop struct {
	URL        string
	StatusCode int
	Location   string
	Header     http.Header
}

// Trace is a request followed through all of its redirects.
type Trace struct {
	Hops       []Hop
	FinalURL   string
	StatusCode int
	Header     http.Header
	Elapsed    time.Duration // until the final response headers arrived
}

// Trace issues method against url, following redirects and recording each hop.
// The response body is discarded.
func (f *Fetcher) Trace(ctx context.Context, method, url string) (*Trace, error) {
	trace := &Trace{}

	client := &http.Client{
		Transport: f.client.Transport,
		Timeout:   f.client.Timeout,
		Jar:       f.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", MaxRedirects)
			}
			if prev := req.Response; prev != nil {
				trace.Hops = append(trace.Hops, Hop{
					URL:        prev.Request.URL.String(),
					StatusCode: prev.StatusCode,
					Location:   prev.Header.Get("Location"),
					Header:     prev.Header.Clone(),
				})
			}
			req.Header.Set("User-Agent", f.userAgent)
			return nil
		},
	}

	req, err := f.newRequest(ctx, method, url)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		var urlErr interface{ Timeout() bool }
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("request timed out: %w", err)
		}
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	trace.Elapsed = time.Since(start)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	trace.FinalURL = resp.Request.URL.String()
	trace.StatusCode = resp.StatusCode
	trace.Header = resp.Header.Clone()
	return trace, nil
}
