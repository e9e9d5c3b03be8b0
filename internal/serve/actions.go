package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtnitsch/seo-web-parser/internal/common"
	"github.com/dtnitsch/seo-web-parser/internal/httpclient"
	"github.com/dtnitsch/seo-web-parser/internal/tools"
	"github.com/dtnitsch/seo-web-parser/pkg/caching"
	"github.com/dtnitsch/seo-web-parser/pkg/parser"
	"github.com/dtnitsch/seo-web-parser/pkg/schemaorg"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v2"
)

// ServeAction runs the MCP server on stdio, or on --http when an address is given.
func ServeAction(c *cli.Context) error {
	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	deps := tools.Deps{
		Config:    env.Config,
		Fetcher:   env.Fetcher,
		Parser:    parser.NewParser(),
		Validator: schemaorg.NewValidator(),
		API:       httpclient.NewClient(tools.ServerName, env.Logger, env.Config.FetchTimeout),
		Logger:    env.Logger,
	}
	defer deps.API.Close()
	if env.Database != nil {
		deps.KeywordCache = caching.NewCache(env.Database, caching.NamespaceKeywords, env.Config.CacheTTL)
	}

	s := tools.NewServer(tools.NewHandlers(deps))

	addr := c.String("http")
	if addr == "" {
		env.Logger.Info("Serving MCP over stdio", "server", tools.ServerName, "version", tools.ServerVersion)
		if err := server.ServeStdio(s); err != nil {
			return fmt.Errorf("failed to serve stdio: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(s, env.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info("Serving MCP over HTTP", "addr", addr, "endpoint", "/mcp")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	env.Logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
