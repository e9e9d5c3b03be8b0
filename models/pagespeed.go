package models

// PageSpeedReport is the page_speed_metrics result.
type PageSpeedReport struct {
	URL              string                 `json:"url" yaml:"url"`
	TestDate         string                 `json:"test_date" yaml:"test_date"`
	Device           string                 `json:"device" yaml:"device"`
	CoreWebVitals    CoreWebVitals          `json:"core_web_vitals" yaml:"core_web_vitals"`
	LighthouseScores LighthouseScores       `json:"lighthouse_scores" yaml:"lighthouse_scores"`
	Opportunities    []PageSpeedOpportunity `json:"opportunities" yaml:"opportunities"`
}

// CoreWebVitals holds paint timings in seconds; FID is milliseconds and CLS is unitless.
type CoreWebVitals struct {
	LargestContentfulPaint float64 `json:"largest_contentful_paint" yaml:"largest_contentful_paint"`
	FirstInputDelay        float64 `json:"first_input_delay" yaml:"first_input_delay"`
	CumulativeLayoutShift  float64 `json:"cumulative_layout_shift" yaml:"cumulative_layout_shift"`
	FirstContentfulPaint   float64 `json:"first_contentful_paint" yaml:"first_contentful_paint"`
	TimeToInteractive      float64 `json:"time_to_interactive" yaml:"time_to_interactive"`
}

// LighthouseScores are category scores on a 0-100 scale.
type LighthouseScores struct {
	Performance   float64 `json:"performance" yaml:"performance"`
	Accessibility float64 `json:"accessibility" yaml:"accessibility"`
	BestPractices float64 `json:"best_practices" yaml:"best_practices"`
	SEO           float64 `json:"seo" yaml:"seo"`
}

type PageSpeedOpportunity struct {
	ID               string  `json:"id" yaml:"id"`
	Title            string  `json:"title" yaml:"title"`
	Description      string  `json:"description" yaml:"description"`
	Score            float64 `json:"score" yaml:"score"`
	PotentialSavings float64 `json:"potential_savings" yaml:"potential_savings"`
}
