package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// Mediastack is adapter for mediastack.com
type Mediastack struct{ base }

// NewMediastack makes mediastack adapter
func NewMediastack(cfg config.ProviderConfig, client *http.Client) *Mediastack {
	return &Mediastack{base: newBase(domain.ProviderMediastack, cfg, client, "https://api.mediastack.com", 100)}
}

type mediastackResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

// Fetch gets newest english news for the category
func (p *Mediastack) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("access_key", p.cfg.APIKey)
	q.Set("languages", p.language("en"))
	q.Set("categories", MapCategory(category, p.id))
	q.Set("limit", strconv.Itoa(p.limit(pageSize)))
	q.Set("sort", "published_desc")

	var resp mediastackResponse
	if err := p.getJSON(ctx, p.endpoint+"/v1/news?"+q.Encode(), nil, &resp); err != nil {
		return p.result(nil, err)
	}
	// mediastack reports some errors with 200 status
	if resp.Error != nil {
		return p.result(nil, &domain.ProviderError{Provider: string(p.id),
			Err: fmt.Errorf("%w: %s: %s", domain.ErrRejected, resp.Error.Code, resp.Error.Message)})
	}

	raws := make([]rawArticle, 0, len(resp.Data))
	for _, a := range resp.Data {
		raws = append(raws, rawArticle{Headline: a.Title, Description: a.Description, URL: a.URL, ImageURL: a.Image,
			PublishedAt: parseTime(a.PublishedAt, time.RFC3339, "2006-01-02T15:04:05-0700")})
	}
	return p.result(p.normalize(category, raws), nil)
}
