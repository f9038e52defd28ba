package provider

import (
	"github.com/umputun/newsdeck/pkg/domain"
)

// categoryTable maps logical categories to one provider vocabulary
type categoryTable struct {
	def     string
	entries map[string]string
}

var categoryTables = map[domain.ProviderID]categoryTable{
	domain.ProviderNewsAPI: {def: "general", entries: map[string]string{
		domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology", domain.CategoryScience: "science",
		domain.CategoryHealth: "health", domain.CategorySports: "sports", domain.CategoryEntertainment: "entertainment",
	}},
	domain.ProviderGNews: {def: "general", entries: map[string]string{
		domain.CategoryWorld: "world", domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology",
		domain.CategoryScience: "science", domain.CategoryHealth: "health", domain.CategorySports: "sports",
		domain.CategoryEntertainment: "entertainment", domain.CategoryPolitics: "nation",
	}},
	domain.ProviderNewsData: {def: "top", entries: map[string]string{
		domain.CategoryWorld: "world", domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology",
		domain.CategoryScience: "science", domain.CategoryHealth: "health", domain.CategorySports: "sports",
		domain.CategoryEntertainment: "entertainment", domain.CategoryPolitics: "politics",
	}},
	domain.ProviderGuardian: {def: "news", entries: map[string]string{
		domain.CategoryWorld: "world", domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology",
		domain.CategoryScience: "science", domain.CategoryHealth: "society", domain.CategorySports: "sport",
		domain.CategoryEntertainment: "culture", domain.CategoryPolitics: "politics",
	}},
	domain.ProviderNYTimes: {def: "home", entries: map[string]string{
		domain.CategoryWorld: "world", domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology",
		domain.CategoryScience: "science", domain.CategoryHealth: "health", domain.CategorySports: "sports",
		domain.CategoryEntertainment: "arts", domain.CategoryPolitics: "politics",
	}},
	domain.ProviderCurrents: {def: "general", entries: map[string]string{
		domain.CategoryWorld: "world", domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology",
		domain.CategoryScience: "science", domain.CategoryHealth: "health", domain.CategorySports: "sports",
		domain.CategoryEntertainment: "entertainment", domain.CategoryPolitics: "politics",
	}},
	domain.ProviderMediastack: {def: "general", entries: map[string]string{
		domain.CategoryBusiness: "business", domain.CategoryTechnology: "technology", domain.CategoryScience: "science",
		domain.CategoryHealth: "health", domain.CategorySports: "sports", domain.CategoryEntertainment: "entertainment",
	}},
	domain.ProviderTheNewsAPI: {def: "general", entries: map[string]string{
		domain.CategoryBusiness: "business", domain.CategoryTechnology: "tech", domain.CategoryScience: "science",
		domain.CategoryHealth: "health", domain.CategorySports: "sports", domain.CategoryEntertainment: "entertainment",
		domain.CategoryPolitics: "politics",
	}},
	domain.ProviderGoogleNews: {def: "", entries: map[string]string{
		domain.CategoryWorld: "WORLD", domain.CategoryBusiness: "BUSINESS", domain.CategoryTechnology: "TECHNOLOGY",
		domain.CategoryScience: "SCIENCE", domain.CategoryHealth: "HEALTH", domain.CategorySports: "SPORTS",
		domain.CategoryEntertainment: "ENTERTAINMENT", domain.CategoryPolitics: "NATION",
	}},
}

// MapCategory translates a logical category into the provider vocabulary.
// Unmapped categories, including "Today's News" and "Top Stories", resolve to the provider default.
// Empty result means "no category filter" for providers without a generic bucket.
func MapCategory(category string, id domain.ProviderID) string {
	table, ok := categoryTables[id]
	if !ok {
		return ""
	}
	if v, ok := table.entries[category]; ok {
		return v
	}
	return table.def
}
