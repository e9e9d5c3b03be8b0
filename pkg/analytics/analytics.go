// Package analytics counts on-page terms for keyword density reports.
package analytics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// stopwords are skipped when counting. Besides English function words the list
// holds navigation chrome that says nothing about what a page targets.
var stopwords = wordSet(`
a about above after again against all also although always am among an and
another any anyone anything are around as at back be because been before being
below between both but by can cannot could did do does doing done down during
each either else enough etc even ever every few for from further had has have
having he her here hers herself him himself his how however i if in into is it
its itself just last less let like made make many may maybe me might more most
much must my myself neither never next no nor not nothing now of off often on
once one only onto or other others our ours ourselves out over own per perhaps
rather same see seem several she should since so some something still such than
that the their theirs them themselves then there therefore these they this those
through thus to together too toward under until up upon us use very via was we
well were what whatever when where whether which while who whose why will with
within without would yet you your yours yourself yourselves
button click home homepage link load loading menu page pages search site website
`)

func wordSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(list) {
		set[w] = struct{}{}
	}
	return set
}

func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency counts lowercased words in text, ignoring stopwords and
// surrounding punctuation.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" || IsStopword(word) {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// Term is one keyword with its share of the page's words.
type Term struct {
	Keyword string  `json:"keyword" yaml:"keyword"`
	Count   int     `json:"count" yaml:"count"`
	Density float64 `json:"density" yaml:"density"` // percent, two decimals
}

// TopTerms returns the n most frequent keywords of counts, ties broken
// alphabetically. Density is relative to totalWords.
func TopTerms(counts map[string]int, totalWords, n int) []Term {
	var terms []Term
	for k, v := range counts {
		terms = append(terms, Term{Keyword: k, Count: v})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Keyword < terms[j].Keyword
	})
	if len(terms) > n {
		terms = terms[:n]
	}

	if totalWords > 0 {
		total := decimal.NewFromInt(int64(totalWords))
		for i := range terms {
			terms[i].Density = decimal.NewFromInt(int64(terms[i].Count)).
				Mul(decimal.NewFromInt(100)).
				Div(total).
				Round(2).
				InexactFloat64()
		}
	}
	return terms
}
