package parser

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/shopspring/decimal"
)

// Below this many letters lingua guesses more than it detects.
const minLanguageSample = 40

var detectableLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
	lingua.Swedish,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
	lingua.Korean,
}

// detectLanguage returns the ISO 639-1 code of text and lingua's confidence in
// it, rounded to two places. Short or undecidable text yields "", 0.
func (p *Parser) detectLanguage(text string) (string, float64) {
	if len(strings.TrimSpace(text)) < minLanguageSample {
		return "", 0
	}

	p.detectorOnce.Do(func() {
		p.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectableLanguages...).
			Build()
	})

	lang, ok := p.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	confidence := p.detector.ComputeLanguageConfidence(text, lang)
	code := strings.ToLower(lang.IsoCode639_1().String())
	return code, decimal.NewFromFloat(confidence).Round(2).InexactFloat64()
}
