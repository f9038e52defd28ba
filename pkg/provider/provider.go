// Package provider implements news provider adapters. Each adapter translates one external
// API into canonical domain.Article records and reports failures as data in domain.ProviderResult.
package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider

// Provider is a news source adapter
type Provider interface {
	ID() domain.ProviderID
	Configured() bool
	Fetch(ctx context.Context, category string, pageSize int) domain.ProviderResult
}

// New makes all known adapters in domain.AllProviders order, configured from cfgs.
// Adapters without credentials are still created and fail with ConfigError on Fetch.
func New(cfgs map[domain.ProviderID]config.ProviderConfig, client *http.Client) []Provider {
	res := make([]Provider, 0, len(domain.AllProviders()))
	for _, id := range domain.AllProviders() {
		if p := NewProvider(id, cfgs[id], client); p != nil {
			res = append(res, p)
		}
	}
	return res
}

// NewProvider makes adapter for the given provider id, nil for unknown id
func NewProvider(id domain.ProviderID, cfg config.ProviderConfig, client *http.Client) Provider {
	switch id {
	case domain.ProviderNewsAPI:
		return NewNewsAPI(cfg, client)
	case domain.ProviderGNews:
		return NewGNews(cfg, client)
	case domain.ProviderNewsData:
		return NewNewsData(cfg, client)
	case domain.ProviderGuardian:
		return NewGuardian(cfg, client)
	case domain.ProviderNYTimes:
		return NewNYTimes(cfg, client)
	case domain.ProviderCurrents:
		return NewCurrents(cfg, client)
	case domain.ProviderMediastack:
		return NewMediastack(cfg, client)
	case domain.ProviderTheNewsAPI:
		return NewTheNewsAPI(cfg, client)
	case domain.ProviderGoogleNews:
		return NewGoogleNews(cfg, client)
	}
	return nil
}

// base keeps everything shared by adapters
type base struct {
	id       domain.ProviderID
	cfg      config.ProviderConfig
	client   *http.Client
	endpoint string
	ceiling  int
	keyless  bool
	now      func() time.Time
}

func newBase(id domain.ProviderID, cfg config.ProviderConfig, client *http.Client, endpoint string, ceiling int) base {
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}
	if client == nil {
		client = NewHTTPClient(30 * time.Second)
	}
	return base{id: id, cfg: cfg, client: client, endpoint: endpoint, ceiling: ceiling, now: time.Now}
}

// ID returns provider id
func (b *base) ID() domain.ProviderID { return b.id }

// Configured reports whether the provider has credentials, or is enabled for keyless providers
func (b *base) Configured() bool {
	if b.keyless {
		return b.cfg.Enabled
	}
	return b.cfg.APIKey != ""
}

func (b *base) checkConfig() error {
	if b.Configured() {
		return nil
	}
	if b.keyless {
		return &domain.ConfigError{Provider: string(b.id), Reason: "provider is not enabled"}
	}
	return &domain.ConfigError{Provider: string(b.id), Reason: "api key is not set"}
}

// limit clamps requested page size to the provider ceiling, optionally lowered by config
func (b *base) limit(pageSize int) int {
	ceiling := b.ceiling
	if b.cfg.MaxPageSize > 0 && b.cfg.MaxPageSize < ceiling {
		ceiling = b.cfg.MaxPageSize
	}
	if pageSize <= 0 || pageSize > ceiling {
		return ceiling
	}
	return pageSize
}

func (b *base) language(def string) string {
	if b.cfg.Language != "" {
		return b.cfg.Language
	}
	return def
}

func (b *base) country(def string) string {
	if b.cfg.Country != "" {
		return b.cfg.Country
	}
	return def
}

// result packs adapter output into ProviderResult
func (b *base) result(articles []domain.Article, err error) domain.ProviderResult {
	if err != nil {
		return domain.FailedProviderResult(string(b.id), err)
	}
	return domain.NewProviderResult(string(b.id), articles)
}
