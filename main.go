package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/seo-web-parser/internal/analyze"
	"github.com/dtnitsch/seo-web-parser/internal/db"
	"github.com/dtnitsch/seo-web-parser/internal/fetch"
	"github.com/dtnitsch/seo-web-parser/internal/serve"
	"github.com/dtnitsch/seo-web-parser/internal/tools"
	"github.com/dtnitsch/seo-web-parser/pkg/help"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

func newApp() *cli.App {
	urlFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "Page URL"}
	}

	return &cli.App{
		Name:    "seo-web-parser",
		Usage:   "SEO data collection as an MCP server and a CLI",
		Version: tools.ServerVersion,
		Before: func(c *cli.Context) error {
			// A missing .env is normal; keys may come from the environment or config.
			_ = godotenv.Load()
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yaml", Usage: "YAML config file (missing file uses defaults)"},
			&cli.StringFlag{Name: "cache-db", Usage: "SQLite cache database path (overrides cache_path)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Output format: json or yaml"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
			&cli.BoolFlag{Name: "debug", Usage: "Log outbound API calls and cache hits"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the MCP server (stdio by default)",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "http", Usage: "Serve streamable HTTP on this address instead of stdio (e.g. :8080)"},
				},
			},
			{
				Name:      "scrape",
				Usage:     "Extract SEO data from one or more pages",
				ArgsUsage: "[url...]",
				Action:    fetch.ScrapeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "Comma separated URLs"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: 4, Usage: "Concurrent workers"},
					&cli.StringFlag{Name: "output-mode", Value: "summary", Usage: "summary or full"},
					&cli.StringFlag{Name: "fields", Usage: "Comma separated fields to keep in full mode"},
					&cli.BoolFlag{Name: "markdown", Usage: "Also render main content as markdown"},
				},
			},
			{
				Name:   "validate",
				Usage:  "Check structured data and rich results eligibility",
				Action: analyze.ValidateAction,
				Flags: []cli.Flag{
					urlFlag(),
					&cli.StringFlag{Name: "file", Usage: "Local HTML file instead of --url"},
					&cli.BoolFlag{Name: "repair", Usage: "Suggest repaired JSON for invalid JSON-LD blocks"},
				},
			},
			{
				Name:   "headers",
				Usage:  "Show SEO relevant response headers",
				Action: analyze.HeadersAction,
				Flags:  []cli.Flag{urlFlag()},
			},
			{
				Name:   "redirects",
				Usage:  "Trace the redirect chain of a URL",
				Action: analyze.RedirectsAction,
				Flags:  []cli.Flag{urlFlag()},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML cheat sheet of setup and commands",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "cache",
				Usage: "Inspect or purge the response cache",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "Entries and size per namespace",
						Action: db.StatsAction,
					},
					{
						Name:   "purge",
						Usage:  "Delete old entries",
						Action: db.PurgeAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "older-than", Value: "0s", Usage: "Only delete entries older than this duration"},
							&cli.StringFlag{Name: "namespace", Usage: "Only purge this namespace (html or keywords)"},
						},
					},
				},
			},
		},
	}
}
