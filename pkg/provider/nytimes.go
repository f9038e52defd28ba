package provider

import (
	"context"
	"net/http"
	"net/url"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// NYTimes is adapter for the New York Times top stories API
type NYTimes struct{ base }

// NewNYTimes makes NYT adapter
func NewNYTimes(cfg config.ProviderConfig, client *http.Client) *NYTimes {
	return &NYTimes{base: newBase(domain.ProviderNYTimes, cfg, client, "https://api.nytimes.com", 50)}
}

type nytimesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title         string `json:"title"`
		Abstract      string `json:"abstract"`
		URL           string `json:"url"`
		PublishedDate string `json:"published_date"`
		Multimedia    []struct {
			URL string `json:"url"`
		} `json:"multimedia"`
	} `json:"results"`
}

// Fetch gets top stories of the mapped section. The API has no size parameter, result is clamped here.
func (p *NYTimes) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("api-key", p.cfg.APIKey)
	section := url.PathEscape(MapCategory(category, p.id))

	var resp nytimesResponse
	if err := p.getJSON(ctx, p.endpoint+"/svc/topstories/v2/"+section+".json?"+q.Encode(), nil, &resp); err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.Results))
	for _, a := range resp.Results {
		r := rawArticle{Headline: a.Title, Description: a.Abstract, URL: a.URL, PublishedAt: parseTime(a.PublishedDate)}
		if len(a.Multimedia) > 0 {
			r.ImageURL = a.Multimedia[0].URL
		}
		raws = append(raws, r)
	}
	articles := p.normalize(category, raws)
	if limit := p.limit(pageSize); len(articles) > limit {
		articles = articles[:limit]
	}
	return p.result(articles, nil)
}
