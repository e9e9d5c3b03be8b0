package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/caching"
	dbpkg "github.com/dtnitsch/seo-web-parser/pkg/db"
	"github.com/dtnitsch/seo-web-parser/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

// Env is what every command needs: configuration, a logger, the optional
// cache database and a page fetcher wired to it.
type Env struct {
	Config   *models.Config
	Logger   *slog.Logger
	Database *dbpkg.DB // nil when caching is disabled
	Fetcher  *fetcher.Fetcher
}

// NewLogger builds the stderr JSON logger honoring --quiet and --debug.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		logLevel = slog.LevelError
	case c.Bool("debug"):
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config, then the environment, then --cache-db.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(os.Getenv)
	if c.IsSet("cache-db") {
		config.CachePath = c.String("cache-db")
	}
	return config, nil
}

// Setup builds the Env for a command. Callers must Close it.
func Setup(c *cli.Context) (*Env, error) {
	config, err := LoadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	env := &Env{Config: config, Logger: NewLogger(c)}

	opts := []fetcher.Option{
		fetcher.WithUserAgent(config.UserAgent),
		fetcher.WithTimeout(config.FetchTimeout),
		fetcher.WithLogger(env.Logger),
	}
	if config.CachePath != "" {
		env.Database, err = dbpkg.Open(config.CachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		opts = append(opts, fetcher.WithCache(caching.NewCache(env.Database, caching.NamespaceHTML, config.CacheTTL)))
		env.Logger.Debug("fetch cache enabled", "path", config.CachePath, "ttl", config.CacheTTL)
	}
	env.Fetcher = fetcher.NewFetcher(opts...)
	return env, nil
}

func (e *Env) Close() error {
	if e.Database == nil {
		return nil
	}
	return e.Database.Close()
}
