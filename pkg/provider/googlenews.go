package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// GoogleNews is keyless adapter for Google News RSS. It has to be enabled explicitly.
type GoogleNews struct{ base }

// NewGoogleNews makes Google News RSS adapter
func NewGoogleNews(cfg config.ProviderConfig, client *http.Client) *GoogleNews {
	b := newBase(domain.ProviderGoogleNews, cfg, client, "https://news.google.com", 100)
	b.keyless = true
	return &GoogleNews{base: b}
}

// Fetch gets the RSS feed of the mapped topic, top stories for unmapped categories
func (p *GoogleNews) Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult {
	if err := p.checkConfig(); err != nil {
		return p.result(nil, err)
	}

	lang, country := p.language("en-US"), p.country("US")
	q := url.Values{}
	q.Set("hl", lang)
	q.Set("gl", country)
	q.Set("ceid", country+":"+strings.SplitN(lang, "-", 2)[0])

	path := "/rss"
	if topic := MapCategory(category, p.id); topic != "" {
		path = "/rss/headlines/section/topic/" + url.PathEscape(topic)
	}

	body, err := p.get(ctx, p.endpoint+path+"?"+q.Encode(), feedHeaders())
	if err != nil {
		return p.result(nil, err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return p.result(nil, &domain.ProviderError{Provider: string(p.id),
			Err: fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)})
	}

	raws := make([]rawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		r := rawArticle{Headline: item.Title, Content: item.Content, Description: item.Description, URL: item.Link}
		switch {
		case item.PublishedParsed != nil:
			r.PublishedAt = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			r.PublishedAt = *item.UpdatedParsed
		}
		if item.Image != nil {
			r.ImageURL = item.Image.URL
		}
		raws = append(raws, r)
	}

	articles := p.normalize(category, raws)
	if limit := p.limit(pageSize); len(articles) > limit {
		articles = articles[:limit]
	}
	return p.result(articles, nil)
}
