package models

// StructuredDataReport is the result of extracting every embedded structured-data
// block (JSON-LD, microdata, RDFa) from one page.
type StructuredDataReport struct {
	JSONLD                 []any                            `json:"json_ld" yaml:"json_ld"`
	Microdata              []MicrodataItem                  `json:"microdata" yaml:"microdata"`
	RDFa                   []RDFaItem                       `json:"rdfa" yaml:"rdfa"`
	ValidationErrors       []string                         `json:"validation_errors" yaml:"validation_errors"`
	SchemaTypes            []string                         `json:"schema_types" yaml:"schema_types"`
	RichResultsEligibility map[string]RichResultEligibility `json:"rich_results_eligibility" yaml:"rich_results_eligibility"`

	// Populated only when repair hints are enabled.
	RepairedJSONLD []RepairedBlock `json:"repaired_json_ld,omitempty" yaml:"repaired_json_ld,omitempty"`
}

// NewStructuredDataReport returns a report whose sequences are empty rather than nil,
// so an empty page serializes as [] and {} instead of null.
func NewStructuredDataReport() *StructuredDataReport {
	return &StructuredDataReport{
		JSONLD:                 []any{},
		Microdata:              []MicrodataItem{},
		RDFa:                   []RDFaItem{},
		ValidationErrors:       []string{},
		SchemaTypes:            []string{},
		RichResultsEligibility: map[string]RichResultEligibility{},
	}
}

// MicrodataItem is one element carrying an itemtype attribute.
type MicrodataItem struct {
	ItemType   string            `json:"itemtype" yaml:"itemtype"`
	Properties map[string]string `json:"properties" yaml:"properties"`
}

// RDFaItem is one element carrying a typeof attribute.
type RDFaItem struct {
	TypeOf     string            `json:"typeof" yaml:"typeof"`
	Properties map[string]string `json:"properties" yaml:"properties"`
}

// RepairedBlock is an invalid JSON-LD block that jsonrepair could fix.
type RepairedBlock struct {
	Index int `json:"index" yaml:"index"` // position among ld+json scripts
	Value any `json:"value" yaml:"value"`
}

// RichResultEligibility is a per-type verdict. JSON-LD items produce an
// *EligibilityResult, microdata items a *MicrodataEligibility.
type RichResultEligibility interface {
	IsEligible() bool
}

// EligibilityResult is the full rich-results verdict for one JSON-LD item.
type EligibilityResult struct {
	Eligible                    bool     `json:"eligible" yaml:"eligible"`
	MissingRequiredFields       []string `json:"missing_required_fields" yaml:"missing_required_fields"`
	MissingRecommendedFields    []string `json:"missing_recommended_fields" yaml:"missing_recommended_fields"`
	RichResultFeatures          []string `json:"rich_result_features" yaml:"rich_result_features"`
	GoogleRichResultsCompatible bool     `json:"google_rich_results_compatible" yaml:"google_rich_results_compatible"`
	ValidationScore             int      `json:"validation_score" yaml:"validation_score"`
	Recommendations             []string `json:"recommendations" yaml:"recommendations"`
}

func (r *EligibilityResult) IsEligible() bool { return r.Eligible }

// MicrodataEligibility is the simplified verdict reported for microdata items.
type MicrodataEligibility struct {
	Eligible       bool   `json:"eligible" yaml:"eligible"`
	Format         string `json:"format" yaml:"format"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

func (m *MicrodataEligibility) IsEligible() bool { return m.Eligible }

// StructuredDataValidation is what the validate tool returns: the report plus the
// caller-supplied URL and timestamp.
type StructuredDataValidation struct {
	StructuredDataReport `yaml:",inline"`
	URL                  string `json:"url" yaml:"url"`
	TestDate             string `json:"test_date" yaml:"test_date"`
}
