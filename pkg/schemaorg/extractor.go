// Package schemaorg extracts embedded structured data (JSON-LD, microdata, RDFa)
// from a parsed page and checks each Schema.org item for rich-results eligibility.
//
// Everything here is pure: no I/O, no shared mutable state beyond the read-only
// requirement table, so a Validator can be shared across goroutines.
package schemaorg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
	"github.com/kaptinlin/jsonrepair"
)

const jsonLDSelector = `script[type="application/ld+json"]`

// Validator extracts structured data from documents.
type Validator struct {
	repair bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithRepair lists a repaired copy of each invalid JSON-LD block that jsonrepair can
// fix. Invalid blocks are still reported in validation_errors and are never evaluated.
func WithRepair() Option {
	return func(v *Validator) {
		v.repair = true
	}
}

// NewValidator returns a Validator configured by opts.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate extracts every structured-data block from doc. It never fails: malformed
// JSON-LD is recorded in ValidationErrors and extraction carries on.
func (v *Validator) Validate(doc *goquery.Document) *models.StructuredDataReport {
	report := models.NewStructuredDataReport()
	if doc == nil {
		return report
	}

	doc.Find(jsonLDSelector).Each(func(i int, s *goquery.Selection) {
		text := s.Text()
		value, err := decodeJSON(text)
		if err != nil {
			report.ValidationErrors = append(report.ValidationErrors, fmt.Sprintf("Invalid JSON-LD: %s", err))
			if v.repair {
				if repaired, ok := repairJSON(text); ok {
					report.RepairedJSONLD = append(report.RepairedJSONLD, models.RepairedBlock{Index: i, Value: repaired})
				}
			}
			return
		}
		report.JSONLD = append(report.JSONLD, value)
		classifyJSONLD(report, value)
	})

	doc.Find("[itemtype]").Each(func(_ int, s *goquery.Selection) {
		itemType, _ := s.Attr("itemtype")
		item := models.MicrodataItem{
			ItemType:   itemType,
			Properties: collectProperties(s, "itemprop"),
		}
		report.Microdata = append(report.Microdata, item)

		if itemType != "" {
			report.RichResultsEligibility["microdata_"+lastSegment(itemType)] = EvaluateMicrodata(item)
		}
	})

	doc.Find("[typeof]").Each(func(_ int, s *goquery.Selection) {
		typeOf, _ := s.Attr("typeof")
		report.RDFa = append(report.RDFa, models.RDFaItem{
			TypeOf:     typeOf,
			Properties: collectProperties(s, "property"),
		})
	})

	return report
}

// JSONLDBlocks returns the decodable JSON-LD blocks of doc in document order.
// Blocks that fail to decode are skipped without a trace.
func JSONLDBlocks(doc *goquery.Document) []any {
	blocks := []any{}
	if doc == nil {
		return blocks
	}
	doc.Find(jsonLDSelector).Each(func(_ int, s *goquery.Selection) {
		if value, err := decodeJSON(s.Text()); err == nil {
			blocks = append(blocks, value)
		}
	})
	return blocks
}

// classifyJSONLD records and evaluates the typed items of one decoded JSON-LD value:
// the members of an @graph array, the object itself, or the elements of a top-level
// array. An @graph that is not an array does not shadow the object's own @type.
func classifyJSONLD(report *models.StructuredDataReport, value any) {
	if obj, ok := jsonval.AsMap(value); ok {
		if items, isGraph := jsonval.AsSlice(obj["@graph"]); isGraph {
			for _, item := range items {
				recordTyped(report, item)
			}
			return
		}
		recordTyped(report, obj)
		return
	}

	if items, ok := jsonval.AsSlice(value); ok {
		for _, item := range items {
			recordTyped(report, item)
		}
	}
}

func recordTyped(report *models.StructuredDataReport, item any) {
	obj, ok := jsonval.AsMap(item)
	if !ok {
		return
	}
	rawType, ok := obj["@type"]
	if !ok {
		return
	}
	schemaType := typeKey(rawType)
	report.SchemaTypes = append(report.SchemaTypes, schemaType)
	report.RichResultsEligibility[schemaType] = Evaluate(obj, schemaType)
}

// typeKey turns an @type value into a map key. Arrays of strings are joined with
// commas, so ["Article"] still evaluates as Article while multi-typed items fall
// through to the unknown-type verdict.
func typeKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			} else {
				parts = append(parts, compactJSON(p))
			}
		}
		return strings.Join(parts, ",")
	default:
		return compactJSON(t)
	}
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// collectProperties maps each descendant's attr value to its content attribute, or
// to its trimmed text when content is missing or empty. Later duplicates win.
func collectProperties(s *goquery.Selection, attr string) map[string]string {
	props := map[string]string{}
	s.Find("[" + attr + "]").Each(func(_ int, prop *goquery.Selection) {
		name, _ := prop.Attr(attr)
		value, ok := prop.Attr("content")
		if !ok || value == "" {
			value = strings.TrimSpace(prop.Text())
		}
		props[name] = value
	})
	return props
}

func lastSegment(itemType string) string {
	parts := strings.Split(itemType, "/")
	return parts[len(parts)-1]
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number so the
// block round-trips verbatim.
func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("extra data after top-level value")
	}
	return value, nil
}

func repairJSON(text string) (any, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	fixed, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, false
	}
	value, err := decodeJSON(fixed)
	if err != nil {
		return nil, false
	}
	return value, true
}
