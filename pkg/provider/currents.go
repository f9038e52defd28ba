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

// Currents is adapter for currentsapi.services
type Currents struct{ base }

// NewCurrents makes Currents adapter
func NewCurrents(cfg config.ProviderConfig, client *http.Client) *Currents {
	return &Currents{base: newBase(domain.ProviderCurrents, cfg, client, "https://api.currentsapi.services", 200)}
}

type currentsResponse struct {
	Status string `json:"status"`
	News   []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		Published   string `json:"published"`
	} `json:"news"`
}

// Fetch gets latest news for the category
func (p *Currents) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("language", p.language("en"))
	q.Set("category", MapCategory(category, p.id))
	q.Set("page_size", strconv.Itoa(p.limit(pageSize)))

	var resp currentsResponse
	err := p.getJSON(ctx, p.endpoint+"/v1/latest-news?"+q.Encode(), map[string]string{"Authorization": p.cfg.APIKey}, &resp)
	if err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.News))
	for _, a := range resp.News {
		image := a.Image
		if image == "None" {
			image = ""
		}
		raws = append(raws, rawArticle{Headline: a.Title, Description: a.Description, URL: a.URL, ImageURL: image,
			PublishedAt: parseTime(a.Published, "2006-01-02 15:04:05 -0700", time.RFC3339)})
	}
	return p.result(p.normalize(category, raws), nil)
}
