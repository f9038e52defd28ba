package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// GNews is adapter for gnews.io
type GNews struct{ base }

// NewGNews makes gnews.io adapter, free tier allows 10 articles per request
func NewGNews(cfg config.ProviderConfig, client *http.Client) *GNews {
	return &GNews{base: newBase(domain.ProviderGNews, cfg, client, "https://gnews.io", 10)}
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch gets top headlines for the category
func (p *GNews) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("lang", p.language("en"))
	if c := p.cfg.Country; c != "" {
		q.Set("country", c)
	}
	q.Set("category", MapCategory(category, p.id))
	q.Set("max", strconv.Itoa(p.limit(pageSize)))
	q.Set("apikey", p.cfg.APIKey)

	var resp gnewsResponse
	if err := p.getJSON(ctx, p.endpoint+"/api/v4/top-headlines?"+q.Encode(), nil, &resp); err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		raws = append(raws, rawArticle{Headline: a.Title, Content: a.Content, Description: a.Description,
			URL: a.URL, ImageURL: a.Image, PublishedAt: parseTime(a.PublishedAt)})
	}
	return p.result(p.normalize(category, raws), nil)
}
