// Package httpclient builds the resty clients used for the third-party SEO APIs.
package httpclient

import (
	"context"
	"log/slog"
	"time"

	"resty.dev/v3"
)

type startsAtKey struct{}
type requestIDKey struct{}

// WithRequestID tags ctx so outbound API calls are logged against the tool call
// that made them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id set by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NewClient returns a resty client that logs every response at debug level.
// API keys travel in query strings, so the query is never logged.
func NewClient(clientName string, logger *slog.Logger, timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		r.SetContext(context.WithValue(r.Context(), startsAtKey{}, time.Now()))
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		startTime, _ := r.Request.Context().Value(startsAtKey{}).(time.Time)
		attrs := []any{
			"request_id", RequestID(r.Request.Context()),
			"client", clientName,
			"status", r.StatusCode(),
			"latency", time.Since(startTime).String(),
		}
		if raw := r.Request.RawRequest; raw != nil {
			attrs = append(attrs, "method", raw.Method, "path", raw.URL.Path)
		}
		logger.Debug("api call", attrs...)
		return nil
	})
	return client
}
