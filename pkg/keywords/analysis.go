package keywords

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dtnitsch/seo-web-parser/models"
)

const (
	toolResearch    = "Keywords Everywhere - Keyword Research Analysis"
	toolRelated     = "Keywords Everywhere - Related Keywords Discovery"
	toolScorer      = "Keywords Everywhere - Opportunity Scorer"
	toolGapAnalysis = "Keywords Everywhere - Competitor Gap Analysis"

	// At most this many gap keywords are sent for metrics.
	maxGapLookups = 100
)

var (
	questionWords      = []string{"what", "how", "why", "when", "where", "who"}
	informationalTerms = []string{"what is", "how to", "guide", "tutorial"}

	competitionMultiplier = map[string]float64{"Low": 1.0, "Medium": 0.7, "High": 0.4}
)

// Research fetches metrics for keywords and scores each one out of 10.
func (c *Client) Research(ctx context.Context, keywords []string, country string) (*models.KeywordResearch, error) {
	data, err := c.SearchVolume(ctx, keywords, country)
	if err != nil {
		return nil, err
	}
	return ResearchFromRows(keywords, country, Rows(data)), nil
}

// ResearchFromRows builds the research report. The score averages a volume
// component, a CPC component and a competition component, each capped at 10.
func ResearchFromRows(keywords []string, country string, rows []Row) *models.KeywordResearch {
	report := &models.KeywordResearch{
		Tool:                  toolResearch,
		Country:               country,
		TotalKeywordsAnalyzed: len(keywords),
		KeywordsData:          []models.KeywordInfo{},
		Summary: models.KeywordResearchSum{
			HighVolumeKeywords:          []string{},
			LowCompetitionOpportunities: []string{},
			HighCPCCommercialTerms:      []string{},
			RecommendedTargets:          []models.RecommendedTarget{},
		},
	}

	for _, row := range rows {
		label := competitionLabel(row.Competition)
		competitionScore := 2.0
		switch label {
		case "Low":
			competitionScore = 10
		case "Medium":
			competitionScore = 5
		}
		volumeScore := math.Min(float64(row.Volume)/1000, 10)
		cpcScore := math.Min(row.CPC*2, 10)
		score := round2((volumeScore + cpcScore + competitionScore) / 3)

		report.KeywordsData = append(report.KeywordsData, models.KeywordInfo{
			Keyword:          row.Keyword,
			SearchVolume:     row.Volume,
			CPC:              row.CPC,
			Competition:      row.Competition,
			Trend:            row.Trend,
			OpportunityScore: score,
		})

		sum := &report.Summary
		if row.Volume >= 1000 {
			sum.HighVolumeKeywords = append(sum.HighVolumeKeywords, row.Keyword)
		}
		if (label == "Low" || label == "Medium") && row.Volume >= 100 {
			sum.LowCompetitionOpportunities = append(sum.LowCompetitionOpportunities, row.Keyword)
		}
		if row.CPC >= 1 {
			sum.HighCPCCommercialTerms = append(sum.HighCPCCommercialTerms, row.Keyword)
		}
		if score >= 6 {
			sum.RecommendedTargets = append(sum.RecommendedTargets, models.RecommendedTarget{
				Keyword: row.Keyword,
				Score:   score,
				Volume:  row.Volume,
				CPC:     row.CPC,
			})
		}
	}

	sort.SliceStable(report.Summary.RecommendedTargets, func(i, j int) bool {
		return report.Summary.RecommendedTargets[i].Score > report.Summary.RecommendedTargets[j].Score
	})
	return report
}

// Discover looks up variants of seed and groups them by intent.
func (c *Client) Discover(ctx context.Context, seed, country string) (*models.RelatedKeywords, error) {
	rows, err := c.Related(ctx, seed, country)
	if err != nil {
		return nil, err
	}
	return DiscoveryFromRows(seed, country, rows), nil
}

// DiscoveryFromRows categorizes rows and proposes content for the question
// and commercial groups. A keyword can land in several categories, but
// commercial and informational intent are exclusive.
func DiscoveryFromRows(seed, country string, rows []Row) *models.RelatedKeywords {
	report := &models.RelatedKeywords{
		Tool:            toolRelated,
		SeedKeyword:     seed,
		Country:         country,
		RelatedKeywords: []models.RelatedKeyword{},
		KeywordCategories: models.KeywordCategories{
			QuestionKeywords:      []models.RelatedKeyword{},
			LongTailOpportunities: []models.RelatedKeyword{},
			CommercialIntent:      []models.RelatedKeyword{},
			InformationalIntent:   []models.RelatedKeyword{},
		},
		ContentOpportunities: []models.ContentOpportunity{},
	}

	cats := &report.KeywordCategories
	for _, row := range rows {
		kw := models.RelatedKeyword{
			Keyword:      row.Keyword,
			SearchVolume: row.Volume,
			CPC:          row.CPC,
			Competition:  row.Competition,
		}
		report.RelatedKeywords = append(report.RelatedKeywords, kw)

		text := strings.ToLower(row.Keyword)
		if containsAny(text, questionWords) {
			cats.QuestionKeywords = append(cats.QuestionKeywords, kw)
		}
		if len(strings.Fields(text)) >= 4 {
			cats.LongTailOpportunities = append(cats.LongTailOpportunities, kw)
		}
		if row.CPC > 1 {
			cats.CommercialIntent = append(cats.CommercialIntent, kw)
		} else if containsAny(text, informationalTerms) {
			cats.InformationalIntent = append(cats.InformationalIntent, kw)
		}
	}

	if n := len(cats.QuestionKeywords); n > 0 {
		report.ContentOpportunities = append(report.ContentOpportunities, models.ContentOpportunity{
			ContentType: "FAQ Page",
			Opportunity: fmt.Sprintf("Create FAQ content targeting %d question-based keywords", n),
			Keywords:    keywordNames(cats.QuestionKeywords, 10),
		})
	}
	if n := len(cats.CommercialIntent); n > 0 {
		report.ContentOpportunities = append(report.ContentOpportunities, models.ContentOpportunity{
			ContentType: "Service/Product Pages",
			Opportunity: fmt.Sprintf("Create commercial pages targeting %d high-CPC keywords", n),
			Keywords:    keywordNames(cats.CommercialIntent, 10),
		})
	}
	return report
}

// Score fetches metrics for keywords and ranks them into priority tiers.
// Keywords containing any of businessTerms get a relevance bonus.
func (c *Client) Score(ctx context.Context, keywords []string, country string, businessTerms []string) (*models.OpportunityScores, error) {
	data, err := c.SearchVolume(ctx, keywords, country)
	if err != nil {
		return nil, err
	}
	return ScoresFromRows(keywords, country, businessTerms, Rows(data)), nil
}

// ScoresFromRows weights volume 40% and CPC 60%, discounts by competition and
// boosts business-relevant keywords by 30%. Tiers use the unrounded score.
func ScoresFromRows(keywords []string, country string, businessTerms []string, rows []Row) *models.OpportunityScores {
	report := &models.OpportunityScores{
		Tool:           toolScorer,
		Country:        country,
		TotalKeywords:  len(keywords),
		ScoredKeywords: []models.ScoredKeyword{},
		PriorityTiers: models.PriorityTiers{
			Critical: []models.ScoredKeyword{},
			High:     []models.ScoredKeyword{},
			Medium:   []models.ScoredKeyword{},
			Low:      []models.ScoredKeyword{},
		},
	}

	terms := make([]string, len(businessTerms))
	for i, t := range businessTerms {
		terms[i] = strings.ToLower(t)
	}

	for _, row := range rows {
		volumeScore := math.Min(float64(row.Volume)/500, 10)
		cpcScore := math.Min(row.CPC*3, 10)
		multiplier, ok := competitionMultiplier[competitionLabel(row.Competition)]
		if !ok {
			multiplier = 0.5
		}
		bonus := 1.0
		if containsAny(strings.ToLower(row.Keyword), terms) {
			bonus = 1.3
		}
		score := (volumeScore*0.4 + cpcScore*0.6) * multiplier * bonus

		scored := models.ScoredKeyword{
			Keyword:          row.Keyword,
			SearchVolume:     row.Volume,
			CPC:              row.CPC,
			Competition:      row.Competition,
			OpportunityScore: round2(score),
		}

		tiers := &report.PriorityTiers
		switch {
		case score >= 8:
			scored.PriorityTier = "Critical"
			scored.Reasoning = "High volume, good CPC, manageable competition"
			tiers.Critical = append(tiers.Critical, scored)
		case score >= 6:
			scored.PriorityTier = "High"
			scored.Reasoning = "Good balance of volume, value, and competition"
			tiers.High = append(tiers.High, scored)
		case score >= 4:
			scored.PriorityTier = "Medium"
			scored.Reasoning = "Moderate opportunity with some challenges"
			tiers.Medium = append(tiers.Medium, scored)
		default:
			scored.PriorityTier = "Low"
			scored.Reasoning = "Low volume, high competition, or low commercial value"
			tiers.Low = append(tiers.Low, scored)
		}
		report.ScoredKeywords = append(report.ScoredKeywords, scored)
	}

	sort.SliceStable(report.ScoredKeywords, func(i, j int) bool {
		return report.ScoredKeywords[i].OpportunityScore > report.ScoredKeywords[j].OpportunityScore
	})
	return report
}

// Gaps finds related keywords of seedTopics that current does not contain,
// then fetches metrics for the first 100 of them.
func (c *Client) Gaps(ctx context.Context, current, seedTopics []string, country string) (*models.KeywordGaps, error) {
	var related []string
	for _, topic := range seedTopics {
		rows, err := c.Related(ctx, topic, country)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			related = append(related, row.Keyword)
		}
	}

	gaps := FindGaps(current, related)
	if len(gaps) == 0 {
		return &models.KeywordGaps{
			Tool:                 toolGapAnalysis,
			Message:              "No significant keyword gaps found",
			CurrentKeywordsCount: len(current),
		}, nil
	}

	lookup := gaps
	if len(lookup) > maxGapLookups {
		lookup = lookup[:maxGapLookups]
	}
	data, err := c.SearchVolume(ctx, lookup, country)
	if err != nil {
		return nil, err
	}
	return GapsFromRows(len(current), len(gaps), Rows(data)), nil
}

// FindGaps returns the entries of related missing from current, compared
// case-insensitively. Order and duplicates of related are kept.
func FindGaps(current, related []string) []string {
	have := make(map[string]bool, len(current))
	for _, kw := range current {
		have[strings.ToLower(kw)] = true
	}
	gaps := []string{}
	for _, kw := range related {
		if !have[strings.ToLower(kw)] {
			gaps = append(gaps, kw)
		}
	}
	return gaps
}

// GapsFromRows prioritizes gap keywords by volume and competition and
// recommends content for the five biggest high-priority gaps.
func GapsFromRows(currentCount, gapCount int, rows []Row) *models.KeywordGaps {
	analyzed := len(rows)
	report := &models.KeywordGaps{
		Tool:                      toolGapAnalysis,
		CurrentKeywordsCount:      currentCount,
		GapOpportunitiesFound:     &gapCount,
		AnalyzedGaps:              &analyzed,
		KeywordGapList:            []models.GapKeyword{},
		HighOpportunityGaps:       []models.GapKeyword{},
		ContentGapRecommendations: []models.GapRecommendation{},
	}

	for _, row := range rows {
		gap := models.GapKeyword{
			Keyword:      row.Keyword,
			SearchVolume: row.Volume,
			CPC:          row.CPC,
			Competition:  row.Competition,
			GapPriority:  "Low",
		}
		label := competitionLabel(row.Competition)
		switch {
		case row.Volume >= 1000 && (label == "Low" || label == "Medium"):
			gap.GapPriority = "High"
			report.HighOpportunityGaps = append(report.HighOpportunityGaps, gap)
		case row.Volume >= 100:
			gap.GapPriority = "Medium"
		}
		report.KeywordGapList = append(report.KeywordGapList, gap)
	}

	byVolume := func(gaps []models.GapKeyword) {
		sort.SliceStable(gaps, func(i, j int) bool {
			return gaps[i].SearchVolume > gaps[j].SearchVolume
		})
	}
	byVolume(report.KeywordGapList)
	byVolume(report.HighOpportunityGaps)

	if len(report.HighOpportunityGaps) > 0 {
		top := report.HighOpportunityGaps
		if len(top) > 5 {
			top = top[:5]
		}
		rec := models.GapRecommendation{
			Recommendation: "Create high-priority content pages",
			TargetKeywords: []string{},
		}
		for _, gap := range top {
			rec.TargetKeywords = append(rec.TargetKeywords, gap.Keyword)
			rec.EstimatedMonthlyVolume += gap.SearchVolume
		}
		report.ContentGapRecommendations = append(report.ContentGapRecommendations, rec)
	}
	return report
}

// TestConnection checks the configured key with an uncached one-keyword
// lookup. Failures are reported in the result, never as an error.
func (c *Client) TestConnection(ctx context.Context) *models.APITestResult {
	if !c.HasKey() {
		return &models.APITestResult{
			Status:  "error",
			Message: "API key not found. Please set KEYWORDS_EVERYWHERE_API_KEY environment variable.",
		}
	}

	data, err := c.keywordData(ctx, []string{"test"}, "US", nil)
	if err != nil {
		invalid := false
		return &models.APITestResult{
			Status:      "error",
			Message:     fmt.Sprintf("API connection failed: %v", err),
			APIKeyValid: &invalid,
		}
	}
	valid := true
	return &models.APITestResult{
		Status:      "success",
		Message:     "API connection successful",
		APIKeyValid: &valid,
		TestResult:  data,
	}
}

func keywordNames(kws []models.RelatedKeyword, limit int) []string {
	names := []string{}
	for i, kw := range kws {
		if i == limit {
			break
		}
		names = append(names, kw.Keyword)
	}
	return names
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
