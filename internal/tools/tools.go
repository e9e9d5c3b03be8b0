// Package tools exposes the SEO collectors as MCP tools.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/seo-web-parser/internal/httpclient"
	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/fetcher"
	"github.com/dtnitsch/seo-web-parser/pkg/keywords"
	"github.com/dtnitsch/seo-web-parser/pkg/parser"
	"github.com/dtnitsch/seo-web-parser/pkg/schemaorg"
	"github.com/dtnitsch/seo-web-parser/pkg/serp"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"resty.dev/v3"
)

const (
	ServerName    = "seo-complete-analysis"
	ServerVersion = "1.0.0"
)

// Deps are the collaborators shared by every tool call. API is required;
// NewHandlers fills the rest with defaults when left nil.
type Deps struct {
	Config       *models.Config
	Fetcher      *fetcher.Fetcher
	Parser       *parser.Parser
	Validator    *schemaorg.Validator
	API          *resty.Client
	KeywordCache keywords.Cache
	Pause        serp.Pauser
	Logger       *slog.Logger
	Now          func() time.Time
}

// Handlers implements one method per tool.
type Handlers struct {
	deps Deps
}

func NewHandlers(deps Deps) *Handlers {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Config == nil {
		deps.Config = models.DefaultConfig()
	}
	if deps.Fetcher == nil {
		deps.Fetcher = fetcher.NewFetcher(fetcher.WithUserAgent(deps.Config.UserAgent))
	}
	if deps.Parser == nil {
		deps.Parser = parser.NewParser()
	}
	if deps.Validator == nil {
		deps.Validator = schemaorg.NewValidator()
	}
	if deps.Pause == nil {
		deps.Pause = serp.RandomPause(deps.Config.ScrapeDelayMin, deps.Config.ScrapeDelayMax)
	}
	return &Handlers{deps: deps}
}

// NewServer builds an MCP server with every tool registered.
func NewServer(h *Handlers) *server.MCPServer {
	s := server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	h.Register(s)
	return s
}

// Register adds every tool to s.
func (h *Handlers) Register(s *server.MCPServer) {
	for _, t := range h.definitions() {
		s.AddTool(t.tool, h.instrument(t.tool.Name, t.handler))
	}
}

type definition struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func (h *Handlers) definitions() []definition {
	defs := h.pageTools()
	defs = append(defs, h.serpTools()...)
	defs = append(defs, h.keywordTools()...)
	return defs
}

// instrument tags each call with a request id, which also reaches the
// outbound API log lines, and logs the outcome.
func (h *Handlers) instrument(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := uuid.NewString()
		ctx = httpclient.WithRequestID(ctx, id)
		logger := h.deps.Logger.With("tool", name, "request_id", id)

		start := time.Now()
		logger.Info("tool call started")
		res, err := next(ctx, req)
		switch {
		case err != nil:
			logger.Error("tool call failed", "error", err)
		case res != nil && res.IsError:
			logger.Warn("tool call returned an error", "duration", time.Since(start))
		default:
			logger.Info("tool call finished", "duration", time.Since(start))
		}
		return res, err
	}
}

func (h *Handlers) timestamp() string {
	return h.deps.Now().Format(models.TimestampLayout)
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult reports a domain failure to the agent as an error result
// carrying the JSON body, not as a protocol error.
func errorResult(body models.ToolError) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal error: %w", err)
	}
	return mcp.NewToolResultError(string(data)), nil
}

// argumentError reports a missing or malformed argument.
func argumentError(err error) (*mcp.CallToolResult, error) {
	return errorResult(models.ToolError{Error: err.Error()})
}

// requireStrings returns the string array argument key, which must be present.
func requireStrings(req mcp.CallToolRequest, key string) ([]string, error) {
	if _, ok := req.GetArguments()[key]; !ok {
		return nil, fmt.Errorf("required argument %q not found", key)
	}
	return req.GetStringSlice(key, []string{}), nil
}

// apiKey returns the api_key argument, falling back to configured.
func apiKey(req mcp.CallToolRequest, configured string) string {
	if k := req.GetString("api_key", ""); k != "" {
		return k
	}
	return configured
}

// scrapePage fetches and parses one page.
func (h *Handlers) scrapePage(ctx context.Context, url string) (*models.SEOPage, error) {
	body, err := h.deps.Fetcher.GetHTMLBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return h.deps.Parser.ParseSEO(url, body)
}
