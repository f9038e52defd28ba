package ainews

import (
	"fmt"
	"time"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/provider"
)

// PlaceholderSource is the SourceProvider of placeholder items
const PlaceholderSource = "placeholder"

// placeholdersPerCategory is the size of the filler set for one category
const placeholdersPerCategory = 2

// placeholders returns fixed filler items for categories, used when generation produced nothing.
// The result depends only on categories and the day.
func placeholders(categories []string, day time.Time) []domain.Article {
	published := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	res := make([]domain.Article, 0, len(categories)*placeholdersPerCategory)
	for _, category := range categories {
		for i := 1; i <= placeholdersPerCategory; i++ {
			headline := fmt.Sprintf("%s: AI briefing %d is being prepared", category, i)
			res = append(res, domain.Article{
				ID:       provider.ArticleID(PlaceholderSource, "", headline),
				Headline: headline,
				Summary: fmt.Sprintf("AI-generated %s news is not available right now. "+
					"Regular provider headlines are still up to date.", category),
				PublishedAt:    published,
				SourceProvider: PlaceholderSource,
				Category:       category,
			})
		}
	}
	return res
}

// IsPlaceholder reports whether the cached day holds only placeholder items
func IsPlaceholder(c *domain.AINewsCache) bool {
	if c == nil || len(c.News) == 0 {
		return false
	}
	for _, a := range c.News {
		if a.SourceProvider != PlaceholderSource {
			return false
		}
	}
	return true
}
