package schemaorg

// Requirement lists the fields Google expects for one Schema.org type and the rich
// result features the type unlocks once every required field is present.
type Requirement struct {
	Required    []string
	Recommended []string
	Features    []string
}

// requirements is read-only after package init.
var requirements = map[string]Requirement{
	"Article": {
		Required:    []string{"headline", "datePublished", "author"},
		Recommended: []string{"dateModified", "image", "publisher", "mainEntityOfPage"},
		Features:    []string{"article_rich_results", "amp_articles", "top_stories"},
	},
	"NewsArticle": {
		Required:    []string{"headline", "datePublished", "author"},
		Recommended: []string{"dateModified", "image", "publisher", "mainEntityOfPage"},
		Features:    []string{"top_stories", "article_rich_results"},
	},
	"BlogPosting": {
		Required:    []string{"headline", "datePublished", "author"},
		Recommended: []string{"dateModified", "image", "publisher"},
		Features:    []string{"article_rich_results"},
	},
	"Product": {
		Required:    []string{"name", "offers"},
		Recommended: []string{"image", "description", "brand", "review", "aggregateRating"},
		Features:    []string{"product_rich_results", "merchant_listings"},
	},
	"Recipe": {
		Required:    []string{"name", "recipeIngredient", "recipeInstructions"},
		Recommended: []string{"image", "author", "datePublished", "description", "nutrition", "cookTime", "prepTime"},
		Features:    []string{"recipe_rich_results", "recipe_carousel"},
	},
	"Event": {
		Required:    []string{"name", "startDate", "location"},
		Recommended: []string{"description", "image", "endDate", "offers", "performer"},
		Features:    []string{"event_rich_results"},
	},
	"Organization": {
		Required:    []string{"name"},
		Recommended: []string{"url", "logo", "sameAs", "contactPoint"},
		Features:    []string{"knowledge_panel", "sitelinks_searchbox"},
	},
	"LocalBusiness": {
		Required:    []string{"name", "address"},
		Recommended: []string{"telephone", "openingHours", "image", "priceRange", "review"},
		Features:    []string{"local_business_rich_results", "knowledge_panel", "local_pack"},
	},
	"Person": {
		Required:    []string{"name"},
		Recommended: []string{"image", "jobTitle", "worksFor", "sameAs"},
		Features:    []string{"knowledge_panel", "person_rich_results"},
	},
	"WebSite": {
		Required:    []string{"name", "url"},
		Recommended: []string{"potentialAction", "sameAs"},
		Features:    []string{"sitelinks_searchbox", "site_name_rich_results"},
	},
	"VideoObject": {
		Required:    []string{"name", "description", "thumbnailUrl", "uploadDate"},
		Recommended: []string{"duration", "embedUrl", "contentUrl"},
		Features:    []string{"video_rich_results", "video_carousel"},
	},
	"FAQPage": {
		Required:    []string{"mainEntity"},
		Recommended: []string{},
		Features:    []string{"faq_rich_results"},
	},
	"HowTo": {
		Required:    []string{"name", "step"},
		Recommended: []string{"image", "totalTime", "estimatedCost", "supply", "tool"},
		Features:    []string{"how_to_rich_results"},
	},
	"BreadcrumbList": {
		Required:    []string{"itemListElement"},
		Recommended: []string{},
		Features:    []string{"breadcrumb_rich_results"},
	},
}

// Lookup returns a copy of the requirement entry for schemaType.
func Lookup(schemaType string) (Requirement, bool) {
	req, ok := requirements[schemaType]
	if !ok {
		return Requirement{}, false
	}
	return Requirement{
		Required:    append([]string{}, req.Required...),
		Recommended: append([]string{}, req.Recommended...),
		Features:    append([]string{}, req.Features...),
	}, true
}
