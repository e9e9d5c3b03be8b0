package help

const ColdstartYAML = `# seo-web-parser Quick Start

setup:
  env_file: |
    # .env in the working directory, loaded on start
    SERPAPI_KEY=...
    GOOGLE_PAGESPEED_KEY=...
    KEYWORDS_EVERYWHERE_API_KEY=...
  config_yaml: |
    # config.yaml (optional, --config to change the path)
    location: "United States"
    country: US
    device: desktop
    cache_path: seo-cache.db   # empty disables the cache
    cache_ttl: 24h

mcp_server:
  stdio: |
    seo-web-parser serve
  http: |
    seo-web-parser serve --http :8080   # POST /mcp, GET /healthz

tools:
  pages: [scrape_seo_data, collect_server_headers, analyze_redirect_chain, validate_structured_data, page_speed_metrics]
  serp: [serp_data_collector, classify_search_intent_data, analyze_serp_content_alignment, analyze_serp_feature_opportunities]
  keywords: [keyword_research_analysis, related_keywords_discovery, keyword_opportunity_scorer, competitor_keyword_gap_analysis, test_keywords_everywhere_api]

commands:
  scrape_summary: |
    seo-web-parser scrape --urls "https://example.com,https://example.org"
  scrape_full: |
    seo-web-parser scrape https://example.com --output-mode full --fields title,meta_tags,headers --markdown
  validate_url: |
    seo-web-parser validate --url https://example.com/article
  validate_file: |
    seo-web-parser validate --file page.html --repair
  headers: |
    seo-web-parser headers --url https://example.com
  redirects: |
    seo-web-parser redirects --url http://example.com
  cache: |
    seo-web-parser --cache-db seo-cache.db cache stats
    seo-web-parser --cache-db seo-cache.db cache purge --older-than 72h --namespace html

output:
  - "--format json (default) or --format yaml"
  - "Logs are JSON on stderr; --quiet for errors only, --debug for API calls"

error_behavior:
  - "Malformed URLs fail fast before fetching"
  - "scrape exit codes: 0=success, 1=partial failure, 2=complete failure"
  - "redirects exits 1 when the chain has issues"
`
