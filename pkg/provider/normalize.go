package provider

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newsdeck/pkg/domain"
)

var stripPolicy = bluemonday.StrictPolicy()

// rawArticle is the provider-agnostic intermediate form of one payload entry
type rawArticle struct {
	Headline    string
	Content     string
	Description string
	URL         string
	ImageURL    string
	PublishedAt time.Time
}

// normalize converts raw entries into canonical articles, skipping entries without headline
func (b *base) normalize(category string, raws []rawArticle) []domain.Article {
	fetchedAt := b.now().UTC()
	res := make([]domain.Article, 0, len(raws))
	for _, r := range raws {
		headline := cleanText(r.Headline)
		if headline == "" || headline == "[Removed]" {
			continue
		}
		a := domain.Article{
			Headline:       headline,
			Summary:        summary(r.Content, r.Description),
			URL:            strings.TrimSpace(r.URL),
			PublishedAt:    r.PublishedAt.UTC(),
			ImageURL:       strings.TrimSpace(r.ImageURL),
			SourceProvider: string(b.id),
			Category:       category,
		}
		if r.PublishedAt.IsZero() {
			a.PublishedAt = fetchedAt
		}
		a.ID = ArticleID(string(b.id), a.URL, a.Headline)
		res = append(res, a)
	}
	return res
}

// ArticleID makes deterministic article id from provider, url and headline
func ArticleID(provider, url, headline string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(provider+"\n"+url+"\n"+headline)).String()
}

// summary picks content, then description, then the sentinel text
func summary(content, description string) string {
	if s := cleanText(content); s != "" {
		return s
	}
	if s := cleanText(description); s != "" {
		return s
	}
	return domain.NoDescription
}

// cleanText strips markup and collapses whitespace
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

// parseTime tries layouts in order, zero time if none matches
func parseTime(value string, layouts ...string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
