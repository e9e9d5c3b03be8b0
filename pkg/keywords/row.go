package keywords

import (
	"strconv"

	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
	"github.com/shopspring/decimal"
)

const unknownCompetition = "Unknown"

// Row is one keyword from a get_keyword_data response.
type Row struct {
	Keyword     string
	Volume      int
	CPC         float64
	Competition any
	Trend       any
}

// Rows reads the data array of a get_keyword_data response. Malformed
// entries are skipped.
func Rows(data map[string]any) []Row {
	rows := []Row{}
	for _, m := range jsonval.Maps(data, "data") {
		rows = append(rows, Row{
			Keyword:     jsonval.String(m, "keyword", ""),
			Volume:      jsonval.Int(m, "vol", 0),
			CPC:         ExtractCPC(m["cpc"]),
			Competition: jsonval.Value(m, "competition", unknownCompetition),
			Trend:       jsonval.Value(m, "trend", []any{}),
		})
	}
	return rows
}

// ExtractCPC reads a cost-per-click value, which the API reports as
// {"currency": "$", "value": "0.09"}, a bare number or a numeric string.
// Anything else is 0.
func ExtractCPC(v any) float64 {
	switch c := v.(type) {
	case map[string]any:
		value, ok := c["value"]
		if !ok {
			return 0
		}
		f, ok := jsonval.Float(value)
		if !ok {
			return 0
		}
		return f
	case float64:
		return c
	case int:
		return float64(c)
	case string:
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// competitionLabel returns competition when the API sent one of its string
// labels, else "".
func competitionLabel(competition any) string {
	s, _ := competition.(string)
	return s
}

func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
