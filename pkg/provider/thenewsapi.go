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

// TheNewsAPI is adapter for thenewsapi.com top stories
type TheNewsAPI struct{ base }

// NewTheNewsAPI makes thenewsapi.com adapter
func NewTheNewsAPI(cfg config.ProviderConfig, client *http.Client) *TheNewsAPI {
	return &TheNewsAPI{base: newBase(domain.ProviderTheNewsAPI, cfg, client, "https://api.thenewsapi.com", 25)}
}

type theNewsAPIResponse struct {
	Data []struct {
		UUID        string `json:"uuid"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Snippet     string `json:"snippet"`
		URL         string `json:"url"`
		ImageURL    string `json:"image_url"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

// Fetch gets top stories for the category
func (p *TheNewsAPI) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("api_token", p.cfg.APIKey)
	q.Set("language", p.language("en"))
	q.Set("categories", MapCategory(category, p.id))
	q.Set("limit", strconv.Itoa(p.limit(pageSize)))

	var resp theNewsAPIResponse
	if err := p.getJSON(ctx, p.endpoint+"/v1/news/top?"+q.Encode(), nil, &resp); err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.Data))
	for _, a := range resp.Data {
		raws = append(raws, rawArticle{Headline: a.Title, Content: a.Snippet, Description: a.Description, URL: a.URL,
			ImageURL: a.ImageURL, PublishedAt: parseTime(a.PublishedAt, time.RFC3339Nano, "2006-01-02T15:04:05.000000Z")})
	}
	return p.result(p.normalize(category, raws), nil)
}
