package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/seo-web-parser/internal/common"
	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/schemaorg"
	"github.com/dtnitsch/seo-web-parser/pkg/technical"
	"github.com/urfave/cli/v2"
)

// ValidateAction reports structured data eligibility for --url or a local --file.
func ValidateAction(c *cli.Context) error {
	target, isFile, err := singleTarget(c)
	if err != nil {
		return err
	}

	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	var doc *goquery.Document
	if isFile {
		doc, err = readDocument(target)
	} else {
		env.Logger.Info("Fetching page", "url", target)
		doc, err = env.Fetcher.GetDocument(c.Context, target)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", target, err)
	}

	var opts []schemaorg.Option
	if c.Bool("repair") {
		opts = append(opts, schemaorg.WithRepair())
	}
	report := schemaorg.NewValidator(opts...).Validate(doc)
	env.Logger.Info("Structured data validated", "source", target, "schema_types", len(report.SchemaTypes), "errors", len(report.ValidationErrors))

	return common.WriteOutput(os.Stdout, &models.StructuredDataValidation{
		StructuredDataReport: *report,
		URL:                  target,
		TestDate:             time.Now().Format(models.TimestampLayout),
	}, c.String("format"))
}

// HeadersAction prints the SEO relevant response headers of --url.
func HeadersAction(c *cli.Context) error {
	url, err := requireURL(c)
	if err != nil {
		return err
	}
	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	headers, err := technical.CollectHeaders(c.Context, env.Fetcher, url)
	if err != nil {
		return err
	}
	return common.WriteOutput(os.Stdout, headers, c.String("format"))
}

// RedirectsAction prints the redirect chain of --url.
func RedirectsAction(c *cli.Context) error {
	url, err := requireURL(c)
	if err != nil {
		return err
	}
	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	analysis, err := technical.AnalyzeRedirects(c.Context, env.Fetcher, url)
	if err != nil {
		return err
	}
	if err := common.WriteOutput(os.Stdout, analysis, c.String("format")); err != nil {
		return err
	}
	if len(analysis.RedirectIssues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func requireURL(c *cli.Context) (string, error) {
	raw := c.String("url")
	if raw == "" {
		raw = c.Args().First()
	}
	if raw == "" {
		return "", fmt.Errorf("no URL provided via --url flag")
	}
	valid, invalid := common.SanitizeAndValidateURLs([]string{raw})
	if len(invalid) > 0 {
		return "", fmt.Errorf("malformed URL: %s", raw)
	}
	return valid[0], nil
}

// singleTarget returns the page to validate and whether it is a local file.
func singleTarget(c *cli.Context) (string, bool, error) {
	file := c.String("file")
	if file != "" && c.String("url") != "" {
		return "", false, fmt.Errorf("use either --url or --file, not both")
	}
	if file != "" {
		return file, true, nil
	}
	url, err := requireURL(c)
	return url, false, err
}

func readDocument(path string) (*goquery.Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return goquery.NewDocumentFromReader(f)
}
