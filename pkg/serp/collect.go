package serp

import (
	"time"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
)

const maxCollectedQuestions = 4

// CollectSERP reshapes a raw search response into the serp_data_collector report.
// Malformed optional sections are dropped; nothing here fails.
func CollectSERP(q Query, raw map[string]any, now time.Time) *models.SERPData {
	info := jsonval.Map(raw, "search_information")

	data := &models.SERPData{
		Keyword:         q.Keyword,
		SearchDate:      now.Format(models.TimestampLayout),
		Location:        q.Location,
		Device:          q.Device,
		TotalResults:    jsonval.Value(info, "total_results", 0),
		SearchTime:      jsonval.Value(info, "time_taken_displayed", 0),
		Results:         organicResults(raw),
		SERPFeatures:    collectFeatures(raw),
		RelatedSearches: relatedQueries(raw, -1, true),
		SearchMetadata: models.SearchMetadata{
			Status:              jsonval.Value(info, "query_displayed", q.Keyword),
			TotalResults:        jsonval.Value(info, "total_results", 0),
			TimeTaken:           jsonval.Value(info, "time_taken_displayed", ""),
			EngineUsed:          "google_via_serpapi",
			OrganicResultsState: jsonval.Value(info, "organic_results_state", ""),
			QueryDisplayed:      jsonval.Value(info, "query_displayed", ""),
			DetectedLocation:    jsonval.Value(jsonval.Map(raw, "search_parameters"), "location", q.Location),
		},
	}
	return data
}

func organicResults(raw map[string]any) []models.OrganicResult {
	results := []models.OrganicResult{}
	for i, item := range jsonval.Slice(raw, "organic_results") {
		r, ok := jsonval.AsMap(item)
		if !ok {
			continue
		}
		results = append(results, models.OrganicResult{
			Position:       jsonval.Value(r, "position", i+1),
			Title:          jsonval.String(r, "title", ""),
			URL:            jsonval.String(r, "link", ""),
			DisplayedLink:  jsonval.String(r, "displayed_link", ""),
			Snippet:        jsonval.String(r, "snippet", ""),
			CachedPageLink: jsonval.String(r, "cached_page_link", ""),
			RichSnippet:    jsonval.Value(r, "rich_snippet", map[string]any{}),
			Sitelinks:      jsonval.Value(r, "sitelinks", map[string]any{}),
		})
	}
	return results
}

func collectFeatures(raw map[string]any) models.SERPFeatures {
	var features models.SERPFeatures

	if box, ok := jsonval.AsMap(raw["answer_box"]); ok {
		features.AnswerBox = &models.AnswerBox{
			Type:          jsonval.String(box, "type", ""),
			Title:         jsonval.String(box, "title", ""),
			Snippet:       jsonval.String(box, "snippet", ""),
			Link:          jsonval.String(box, "link", ""),
			DisplayedLink: jsonval.String(box, "displayed_link", ""),
			Source:        jsonval.Value(box, "source", map[string]any{}),
		}
	}

	for _, item := range jsonval.Slice(raw, "people_also_ask") {
		if len(features.PeopleAlsoAsk) == maxCollectedQuestions {
			break
		}
		paa, ok := jsonval.AsMap(item)
		if !ok {
			continue
		}
		features.PeopleAlsoAsk = append(features.PeopleAlsoAsk, models.PeopleAlsoAsk{
			Question:      jsonval.String(paa, "question", ""),
			Snippet:       jsonval.String(paa, "snippet", ""),
			Title:         jsonval.String(paa, "title", ""),
			Link:          jsonval.String(paa, "link", ""),
			DisplayedLink: jsonval.String(paa, "displayed_link", ""),
		})
	}

	if kg, ok := jsonval.AsMap(raw["knowledge_graph"]); ok {
		features.KnowledgeGraph = &models.KnowledgeGraph{
			Title:                    jsonval.String(kg, "title", ""),
			Type:                     jsonval.String(kg, "type", ""),
			Description:              jsonval.String(kg, "description", ""),
			Source:                   jsonval.Value(kg, "source", map[string]any{}),
			Attributes:               jsonval.Value(kg, "attributes", map[string]any{}),
			KGMID:                    jsonval.String(kg, "kgmid", ""),
			KnowledgeGraphSearchLink: jsonval.String(kg, "knowledge_graph_search_link", ""),
		}
	}
	return features
}

// relatedQueries lists the query of each related search, up to limit entries
// (limit < 0 means all). With skipEmpty, entries without a query are dropped;
// otherwise they contribute "".
func relatedQueries(raw map[string]any, limit int, skipEmpty bool) []string {
	queries := []string{}
	items := jsonval.Slice(raw, "related_searches")
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	for _, item := range items {
		m, ok := jsonval.AsMap(item)
		if !ok {
			continue
		}
		q := jsonval.String(m, "query", "")
		if q == "" && skipEmpty {
			continue
		}
		queries = append(queries, q)
	}
	return queries
}

// questions lists the first limit people-also-ask questions.
func questions(raw map[string]any, limit int) []string {
	out := []string{}
	items := jsonval.Slice(raw, "people_also_ask")
	if len(items) > limit {
		items = items[:limit]
	}
	for _, item := range items {
		if m, ok := jsonval.AsMap(item); ok {
			out = append(out, jsonval.String(m, "question", ""))
		}
	}
	return out
}
