package models

// ServerHeaders is the collect_server_headers result.
type ServerHeaders struct {
	URL              string            `json:"url" yaml:"url"`
	StatusCode       int               `json:"status_code" yaml:"status_code"`
	Headers          map[string]string `json:"headers" yaml:"headers"`
	ServerAnalysis   ServerAnalysis    `json:"server_analysis" yaml:"server_analysis"`
	RedirectAnalysis RedirectSummary   `json:"redirect_analysis" yaml:"redirect_analysis"`
}

type ServerAnalysis struct {
	ServerSoftware  string          `json:"server_software" yaml:"server_software"`
	XRobotsTag      string          `json:"x_robots_tag" yaml:"x_robots_tag"`
	CacheControl    string          `json:"cache_control" yaml:"cache_control"`
	Expires         string          `json:"expires" yaml:"expires"`
	ETag            string          `json:"etag" yaml:"etag"`
	LastModified    string          `json:"last_modified" yaml:"last_modified"`
	ContentType     string          `json:"content_type" yaml:"content_type"`
	ContentEncoding string          `json:"content_encoding" yaml:"content_encoding"`
	SecurityHeaders SecurityHeaders `json:"security_headers" yaml:"security_headers"`
}

type SecurityHeaders struct {
	HSTS                string `json:"hsts" yaml:"hsts"`
	CSP                 string `json:"csp" yaml:"csp"`
	XFrameOptions       string `json:"x_frame_options" yaml:"x_frame_options"`
	XContentTypeOptions string `json:"x_content_type_options" yaml:"x_content_type_options"`
	ReferrerPolicy      string `json:"referrer_policy" yaml:"referrer_policy"`
}

// RedirectSummary is the short redirect view embedded in ServerHeaders.
type RedirectSummary struct {
	RedirectCount int      `json:"redirect_count" yaml:"redirect_count"`
	RedirectChain []string `json:"redirect_chain" yaml:"redirect_chain"` // every hop URL plus the final URL
	RedirectTypes []int    `json:"redirect_types" yaml:"redirect_types"`
}

// RedirectAnalysis is the analyze_redirect_chain result.
type RedirectAnalysis struct {
	OriginalURL    string         `json:"original_url" yaml:"original_url"`
	RedirectChain  []RedirectStep `json:"redirect_chain" yaml:"redirect_chain"`
	TotalRedirects int            `json:"total_redirects" yaml:"total_redirects"`
	RedirectTypes  []int          `json:"redirect_types" yaml:"redirect_types"`
	RedirectIssues []string       `json:"redirect_issues" yaml:"redirect_issues"`
	FinalURL       string         `json:"final_url" yaml:"final_url"`
	RedirectTime   float64        `json:"redirect_time" yaml:"redirect_time"` // seconds
}

type RedirectStep struct {
	Step           int    `json:"step" yaml:"step"`
	FromURL        string `json:"from_url" yaml:"from_url"`
	StatusCode     int    `json:"status_code" yaml:"status_code"`
	RedirectType   string `json:"redirect_type" yaml:"redirect_type"`
	LocationHeader string `json:"location_header" yaml:"location_header"`
	ResponseTime   string `json:"response_time" yaml:"response_time"`
}
