package schemaorg

import (
	"slices"
	"strings"

	"github.com/dtnitsch/seo-web-parser/models"
)

// UnknownSchemaType is reported as the only missing required field when a type has
// no requirement entry.
const UnknownSchemaType = "Unknown schema type"

const microdataRecommendation = "Consider migrating to JSON-LD for better support"

// Evaluate checks item against the requirement entry for schemaType.
func Evaluate(item map[string]any, schemaType string) *models.EligibilityResult {
	result := &models.EligibilityResult{
		MissingRequiredFields:    []string{},
		MissingRecommendedFields: []string{},
		RichResultFeatures:       []string{},
		Recommendations:          []string{},
	}

	req, ok := Lookup(schemaType)
	if !ok {
		result.MissingRequiredFields = []string{UnknownSchemaType}
		return result
	}

	for _, field := range req.Required {
		if !FieldExists(item, field) {
			result.MissingRequiredFields = append(result.MissingRequiredFields, field)
		}
	}
	for _, field := range req.Recommended {
		if !FieldExists(item, field) {
			result.MissingRecommendedFields = append(result.MissingRecommendedFields, field)
		}
	}

	missingRequired := len(result.MissingRequiredFields)
	missingRecommended := len(result.MissingRecommendedFields)

	result.Eligible = missingRequired == 0
	result.GoogleRichResultsCompatible = result.Eligible && missingRecommended <= 2
	if result.Eligible {
		result.RichResultFeatures = req.Features
	}

	total := len(req.Required) + len(req.Recommended)
	if total > 0 {
		presentFields := total - missingRequired - missingRecommended
		// Float division then truncation, matching int(present / total * 100).
		result.ValidationScore = int(float64(presentFields) / float64(total) * 100)
	}

	result.Recommendations = recommendations(schemaType, result.MissingRequiredFields, result.MissingRecommendedFields)
	return result
}

func recommendations(schemaType string, missingRequired, missingRecommended []string) []string {
	recs := []string{}

	if len(missingRequired) > 0 {
		recs = append(recs, "Add required fields: "+strings.Join(missingRequired, ", "))
	}
	if len(missingRecommended) > 0 {
		first := missingRecommended[:min(3, len(missingRecommended))]
		recs = append(recs, "Consider adding recommended fields: "+strings.Join(first, ", "))
	}

	if schemaType == "Article" && slices.Contains(missingRecommended, "image") {
		recs = append(recs, "Add high-quality images for better rich results appearance")
	}
	if schemaType == "LocalBusiness" && slices.Contains(missingRecommended, "openingHours") {
		recs = append(recs, "Add opening hours for local pack eligibility")
	}
	if schemaType == "Product" && slices.Contains(missingRecommended, "aggregateRating") {
		recs = append(recs, "Add customer reviews and ratings for enhanced product rich results")
	}

	return recs
}

// EvaluateMicrodata is the simplified check applied to microdata items: more than
// two properties is enough.
func EvaluateMicrodata(item models.MicrodataItem) *models.MicrodataEligibility {
	return &models.MicrodataEligibility{
		Eligible:       len(item.Properties) > 2,
		Format:         "microdata",
		Recommendation: microdataRecommendation,
	}
}
