package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// NewsData is adapter for newsdata.io latest news
type NewsData struct{ base }

// NewNewsData makes newsdata.io adapter
func NewNewsData(cfg config.ProviderConfig, client *http.Client) *NewsData {
	return &NewsData{base: newBase(domain.ProviderNewsData, cfg, client, "https://newsdata.io", 10)}
}

type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		ArticleID   string `json:"article_id"`
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		Content     string `json:"content"`
		PubDate     string `json:"pubDate"`
		ImageURL    string `json:"image_url"`
	} `json:"results"`
}

// Fetch gets latest news for the category
func (p *NewsData) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("apikey", p.cfg.APIKey)
	q.Set("language", p.language("en"))
	q.Set("category", MapCategory(category, p.id))
	q.Set("size", strconv.Itoa(p.limit(pageSize)))

	var resp newsDataResponse
	if err := p.getJSON(ctx, p.endpoint+"/api/1/latest?"+q.Encode(), nil, &resp); err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.Results))
	for _, a := range resp.Results {
		// paid-plan fields come back as a placeholder on free tier
		content := a.Content
		if content == "ONLY AVAILABLE IN PAID PLANS" {
			content = ""
		}
		raws = append(raws, rawArticle{Headline: a.Title, Content: content, Description: a.Description,
			URL: a.Link, ImageURL: a.ImageURL, PublishedAt: parseTime(a.PubDate, time.DateTime, time.RFC3339)})
	}
	return p.result(p.normalize(category, raws), nil)
}
