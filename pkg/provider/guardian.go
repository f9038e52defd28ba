package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// Guardian is adapter for the Guardian content API
type Guardian struct{ base }

// NewGuardian makes Guardian adapter
func NewGuardian(cfg config.ProviderConfig, client *http.Client) *Guardian {
	return &Guardian{base: newBase(domain.ProviderGuardian, cfg, client, "https://content.guardianapis.com", 50)}
}

type guardianResponse struct {
	Response struct {
		Status  string `json:"status"`
		Results []struct {
			ID                 string `json:"id"`
			WebTitle           string `json:"webTitle"`
			WebURL             string `json:"webUrl"`
			WebPublicationDate string `json:"webPublicationDate"`
			Fields             struct {
				Thumbnail string `json:"thumbnail"`
				TrailText string `json:"trailText"`
			} `json:"fields"`
		} `json:"results"`
	} `json:"response"`
}

// Fetch gets newest articles of the mapped section
func (p *Guardian) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	q := url.Values{}
	q.Set("section", MapCategory(category, p.id))
	q.Set("page-size", strconv.Itoa(p.limit(pageSize)))
	q.Set("order-by", "newest")
	q.Set("show-fields", "thumbnail,trailText")
	q.Set("api-key", p.cfg.APIKey)

	var resp guardianResponse
	if err := p.getJSON(ctx, p.endpoint+"/search?"+q.Encode(), nil, &resp); err != nil {
		return p.result(nil, err)
	}

	raws := make([]rawArticle, 0, len(resp.Response.Results))
	for _, a := range resp.Response.Results {
		raws = append(raws, rawArticle{Headline: a.WebTitle, Description: a.Fields.TrailText, URL: a.WebURL,
			ImageURL: a.Fields.Thumbnail, PublishedAt: parseTime(a.WebPublicationDate)})
	}
	return p.result(p.normalize(category, raws), nil)
}
