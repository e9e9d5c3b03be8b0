package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/schemaorg"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
	"golang.org/x/net/html"
)

var contentContainer = regexp.MustCompile(`(?i)content|main|post|article`)

// Parser turns raw HTML into the SEO view of a page.
type Parser struct {
	markdown bool
	now      func() time.Time

	detectorOnce sync.Once
	detector     lingua.LanguageDetector
}

type Option func(*Parser)

// WithMarkdown also renders the main content as markdown.
func WithMarkdown() Option {
	return func(p *Parser) { p.markdown = true }
}

// WithClock fixes the extraction timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSEO extracts every SEO field from body, which was fetched from rawURL.
// Relative links resolve against rawURL.
func (p *Parser) ParseSEO(rawURL string, body []byte) (*models.SEOPage, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &models.SEOPage{
		URL:            rawURL,
		ExtractionDate: p.now().Format(models.TimestampLayout),
		Title:          extractTitle(doc),
		MetaTags:       extractMetaTags(doc),
		Headers:        extractHeaders(doc),
		CanonicalURL:   attrOf(doc.Find(`link[rel~="canonical"]`), "href"),
		RobotsMeta:     attrOf(doc.Find(`meta[name="robots"]`), "content"),
		MetaViewport:   attrOf(doc.Find(`meta[name="viewport"]`), "content"),
		InternalLinks:  extractInternalLinks(doc, base),
		ExternalLinks:  extractExternalLinks(doc, base),
		SchemaMarkup:   schemaorg.JSONLDBlocks(doc),
		OpenGraph:      prefixedMeta(doc, "property", "og:"),
		TwitterCards:   prefixedMeta(doc, "name", "twitter:"),
		Hreflang:       extractHreflang(doc),
		MetaRefresh:    attrOf(doc.Find(`meta[http-equiv="refresh"]`), "content"),
		BaseHref:       attrOf(doc.Find(`base[href]`), "href"),
	}

	// Full text and word count are taken after chrome removal, like main content.
	stripped := cloneDocument(doc)
	main := mainContent(stripped)
	page.MainContent = strippedText(main)
	page.FullText = strippedText(stripped.Selection)
	page.WordCount = len(strings.Fields(stripped.Text()))

	if p.markdown {
		outer, err := goquery.OuterHtml(main)
		if err == nil {
			page.MainContentMarkdown, err = htmltomarkdown.ConvertString(outer)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to convert main content to markdown: %w", err)
		}
	}

	page.Meta = p.enrich(base, body, page.MainContent)
	return page, nil
}

// enrich adds readability metadata and the detected language. Readability
// failures only leave the enrichment empty.
func (p *Parser) enrich(base *url.URL, body []byte, text string) models.PageMetadata {
	var meta models.PageMetadata

	rp := readability.NewParser()
	article, err := rp.Parse(bytes.NewReader(body), base)
	if err == nil {
		meta.Author = normalizeText(article.Byline)
		meta.Excerpt = normalizeText(article.Excerpt)
		meta.SiteName = article.SiteName
		if article.PublishedTime != nil {
			meta.PublishedTime = article.PublishedTime.Format("2006-01-02")
		}
		meta.Favicon = article.Favicon
		meta.Image = article.Image
	}

	meta.Language, meta.LanguageConfidence = p.detectLanguage(text)
	return meta
}

func cloneDocument(doc *goquery.Document) *goquery.Document {
	return goquery.NewDocumentFromNode(doc.Selection.Clone().Get(0))
}

// mainContent strips page chrome from doc and picks the most specific content
// container: main, article, a content-ish div (class first, then id), body.
func mainContent(doc *goquery.Document) *goquery.Selection {
	doc.Find("script,style,nav,header,footer,aside").Remove()

	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}
	for _, attr := range []string{"class", "id"} {
		sel := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			v, ok := s.Attr(attr)
			return ok && contentContainer.MatchString(v)
		}).First()
		if sel.Length() > 0 {
			return sel
		}
	}
	if sel := doc.Find("body").First(); sel.Length() > 0 {
		return sel
	}
	return doc.Selection
}

// strippedText joins the trimmed, non-empty text nodes under s with single spaces.
func strippedText(s *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

func extractTitle(doc *goquery.Document) *string {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return nil
	}
	title := strings.TrimSpace(sel.Text())
	return &title
}

// extractMetaTags keys each meta tag by name, property or http-equiv, in that order.
func extractMetaTags(doc *goquery.Document) map[string]string {
	tags := map[string]string{}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content := s.AttrOr("content", "")
		for _, attr := range []string{"name", "property", "http-equiv"} {
			if key := s.AttrOr(attr, ""); key != "" {
				tags[key] = content
				return
			}
		}
	})
	return tags
}

func extractHeaders(doc *goquery.Document) map[string][]string {
	headers := make(map[string][]string, 6)
	for i := 1; i <= 6; i++ {
		tag := fmt.Sprintf("h%d", i)
		texts := []string{}
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(s.Text()))
		})
		headers[tag] = texts
	}
	return headers
}

// attrOf returns attr of the first element in sel, or nil when either is missing.
func attrOf(sel *goquery.Selection, attr string) *string {
	v, ok := sel.First().Attr(attr)
	if !ok {
		return nil
	}
	return &v
}

func prefixedMeta(doc *goquery.Document, attr, prefix string) map[string]string {
	tags := map[string]string{}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		if key := s.AttrOr(attr, ""); strings.HasPrefix(key, prefix) {
			tags[key] = s.AttrOr("content", "")
		}
	})
	return tags
}

func newLink(s *goquery.Selection, target string) models.Link {
	return models.Link{
		URL:        target,
		AnchorText: strings.TrimSpace(s.Text()),
		Title:      s.AttrOr("title", ""),
		Rel:        append([]string{}, strings.Fields(s.AttrOr("rel", ""))...),
	}
}

// extractInternalLinks resolves every href against base and keeps those on the
// same host, or with no host at all.
func extractInternalLinks(doc *goquery.Document, base *url.URL) []models.Link {
	links := []models.Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		ref, err := url.Parse(s.AttrOr("href", ""))
		if err != nil {
			return
		}
		full := base.ResolveReference(ref)
		if full.Host == base.Host || full.Host == "" {
			links = append(links, newLink(s, full.String()))
		}
	})
	return links
}

// extractExternalLinks keeps absolute http(s) hrefs pointing at another host.
func extractExternalLinks(doc *goquery.Document, base *url.URL) []models.Link {
	links := []models.Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if !strings.HasPrefix(href, "http") {
			return
		}
		u, err := url.Parse(href)
		if err != nil || u.Host == base.Host {
			return
		}
		links = append(links, newLink(s, href))
	})
	return links
}

func extractHreflang(doc *goquery.Document) []models.Hreflang {
	entries := []models.Hreflang{}
	doc.Find(`link[rel~="alternate"]`).Each(func(_ int, s *goquery.Selection) {
		lang := s.AttrOr("hreflang", "")
		href := s.AttrOr("href", "")
		if lang != "" && href != "" {
			entries = append(entries, models.Hreflang{Hreflang: lang, Href: href})
		}
	})
	return entries
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
