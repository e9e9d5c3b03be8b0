// Package mapreduce aggregates per-page word counts across a scrape run.
package mapreduce

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/seo-web-parser/pkg/analytics"
)

// Map counts the keywords of one page.
func Map(content string) map[string]int {
	return analytics.WordFrequency(content)
}

// Reduce sums the per-page counts.
func Reduce(intermediate []map[string]int) map[string]int {
	final := make(map[string]int)
	for _, counts := range intermediate {
		for word, count := range counts {
			final[word] += count
		}
	}
	return final
}

// TopKeywords renders the n most frequent words as "word:count".
func TopKeywords(wordCounts map[string]int, n int) []string {
	valid := make(map[string]int, len(wordCounts))
	for word, count := range wordCounts {
		if isValidKeyword(word) {
			valid[word] = count
		}
	}

	top := analytics.TopTerms(valid, 0, n)
	keywords := make([]string, 0, len(top))
	for _, t := range top {
		keywords = append(keywords, fmt.Sprintf("%s:%d", t.Keyword, t.Count))
	}
	return keywords
}

// isValidKeyword drops tokens that are clearly code or markup fragments.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}
	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}} {
		if strings.Contains(word, pair[0]) && !strings.Contains(word, pair[1]) {
			return false
		}
	}
	return strings.Count(word, `"`)%2 == 0 && strings.Count(word, "'")%2 == 0
}
