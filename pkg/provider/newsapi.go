package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// NewsAPI is adapter for newsapi.org top headlines
type NewsAPI struct{ base }

// NewNewsAPI makes newsapi.org adapter
func NewNewsAPI(cfg config.ProviderConfig, client *http.Client) *NewsAPI {
	return &NewsAPI{base: newBase(domain.ProviderNewsAPI, cfg, client, "https://newsapi.org", 100)}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch gets top headlines for the category
func (p *NewsAPI) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("country", p.country("us"))
	q.Set("category", MapCategory(category, p.id))
	q.Set("pageSize", strconv.Itoa(p.limit(pageSize)))

	var resp newsAPIResponse
	err := p.getJSON(ctx, p.endpoint+"/v2/top-headlines?"+q.Encode(), map[string]string{"X-Api-Key": p.cfg.APIKey}, &resp)
	if err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		raws = append(raws, rawArticle{Headline: a.Title, Content: a.Content, Description: a.Description,
			URL: a.URL, ImageURL: a.URLToImage, PublishedAt: parseTime(a.PublishedAt)})
	}
	return p.result(p.normalize(category, raws), nil)
}
