package db

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/seo-web-parser/internal/common"
	dbpkg "github.com/dtnitsch/seo-web-parser/pkg/db"
	"github.com/urfave/cli/v2"
)

func openCache(c *cli.Context) (*dbpkg.DB, error) {
	config, err := common.LoadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if config.CachePath == "" {
		return nil, fmt.Errorf("no cache database configured. Set cache_path in the config or pass --cache-db")
	}

	database, err := dbpkg.Open(config.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// StatsAction prints entry counts and sizes per cache namespace.
func StatsAction(c *cli.Context) error {
	database, err := openCache(c)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.CacheStats()
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	if c.IsSet("format") {
		return common.WriteOutput(os.Stdout, stats, c.String("format"))
	}

	if len(stats) == 0 {
		fmt.Println("Cache is empty")
		return nil
	}

	fmt.Printf("%-12s %-8s %-12s %-20s %-20s\n", "Namespace", "Entries", "Size", "Oldest", "Newest")
	fmt.Println(strings.Repeat("-", 76))
	var total int
	for _, s := range stats {
		fmt.Printf("%-12s %-8d %-12s %-20s %-20s\n",
			s.Namespace,
			s.Entries,
			formatBytes(s.SizeBytes),
			s.OldestAt.Format("2006-01-02 15:04:05"),
			s.NewestAt.Format("2006-01-02 15:04:05"),
		)
		total += s.Entries
	}
	fmt.Printf("\nTotal: %d entries in %s\n", total, database.Path())
	return nil
}

// PurgeAction deletes cache entries older than --older-than.
func PurgeAction(c *cli.Context) error {
	olderThan, err := time.ParseDuration(c.String("older-than"))
	if err != nil {
		return fmt.Errorf("invalid older-than duration: %w", err)
	}
	if olderThan < 0 {
		return fmt.Errorf("older-than must not be negative: %s", olderThan)
	}

	database, err := openCache(c)
	if err != nil {
		return err
	}
	defer database.Close()

	namespace := c.String("namespace")
	removed, err := database.PurgeCacheEntries(namespace, time.Now().Add(-olderThan))
	if err != nil {
		return err
	}

	scope := "all namespaces"
	if namespace != "" {
		scope = "namespace " + namespace
	}
	fmt.Printf("Purged %d entries older than %s from %s\n", removed, olderThan, scope)
	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
