package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

func TestAdapters_Fetch(t *testing.T) {
	tests := []struct {
		name     string
		make     func(cfg config.ProviderConfig) Provider
		cfg      config.ProviderConfig
		path     string
		check    func(t *testing.T, r *http.Request)
		response string
		want     []string // headlines
		wantImg  string   // image of the first article
	}{
		{
			name: "newsapi", make: func(c config.ProviderConfig) Provider { return NewNewsAPI(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k1"}, path: "/v2/top-headlines",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k1", r.Header.Get("X-Api-Key"))
				assert.Equal(t, "technology", r.URL.Query().Get("category"))
				assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
				assert.Equal(t, "us", r.URL.Query().Get("country"))
			},
			response: `{"status":"ok","articles":[
				{"title":"Chip launch","description":"d","content":"c","url":"https://n.com/1","urlToImage":"https://n.com/1.jpg","publishedAt":"2025-06-01T10:00:00Z"},
				{"title":"[Removed]","url":"https://removed.com"}]}`,
			want: []string{"Chip launch"}, wantImg: "https://n.com/1.jpg",
		},
		{
			name: "gnews", make: func(c config.ProviderConfig) Provider { return NewGNews(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k2"}, path: "/api/v4/top-headlines",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k2", r.URL.Query().Get("apikey"))
				assert.Equal(t, "en", r.URL.Query().Get("lang"))
				assert.Equal(t, "5", r.URL.Query().Get("max"))
			},
			response: `{"totalArticles":2,"articles":[
				{"title":"A","description":"d","url":"https://g.com/a","image":"https://g.com/a.png","publishedAt":"2025-06-01T10:00:00Z"},
				{"title":"B","description":"d","url":"https://g.com/b","publishedAt":"2025-06-01T09:00:00Z"}]}`,
			want: []string{"A", "B"}, wantImg: "https://g.com/a.png",
		},
		{
			name: "newsdata", make: func(c config.ProviderConfig) Provider { return NewNewsData(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k3"}, path: "/api/1/latest",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k3", r.URL.Query().Get("apikey"))
				assert.Equal(t, "5", r.URL.Query().Get("size"))
			},
			response: `{"status":"success","results":[
				{"article_id":"x1","title":"ND","link":"https://nd.io/1","description":"d","content":"ONLY AVAILABLE IN PAID PLANS","pubDate":"2025-06-01 10:00:00","image_url":"https://nd.io/1.jpg"}]}`,
			want: []string{"ND"}, wantImg: "https://nd.io/1.jpg",
		},
		{
			name: "guardian", make: func(c config.ProviderConfig) Provider { return NewGuardian(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k4"}, path: "/search",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k4", r.URL.Query().Get("api-key"))
				assert.Equal(t, "technology", r.URL.Query().Get("section"))
				assert.Equal(t, "5", r.URL.Query().Get("page-size"))
				assert.Equal(t, "newest", r.URL.Query().Get("order-by"))
			},
			response: `{"response":{"status":"ok","results":[
				{"id":"tech/1","webTitle":"GU","webUrl":"https://gu.com/1","webPublicationDate":"2025-06-01T10:00:00Z","fields":{"thumbnail":"https://gu.com/t.jpg","trailText":"<strong>trail</strong>"}}]}}`,
			want: []string{"GU"}, wantImg: "https://gu.com/t.jpg",
		},
		{
			name: "nytimes", make: func(c config.ProviderConfig) Provider { return NewNYTimes(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k5"}, path: "/svc/topstories/v2/technology.json",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k5", r.URL.Query().Get("api-key"))
			},
			response: `{"status":"OK","results":[
				{"title":"T1","abstract":"a","url":"https://ny.com/1","published_date":"2025-06-01T06:00:00-04:00","multimedia":[{"url":"https://ny.com/1.jpg"}]},
				{"title":"T2","abstract":"a","url":"https://ny.com/2","published_date":"2025-06-01T05:00:00-04:00"},
				{"title":"T3","url":"https://ny.com/3"},{"title":"T4","url":"https://ny.com/4"},
				{"title":"T5","url":"https://ny.com/5"},{"title":"T6","url":"https://ny.com/6"}]}`,
			want: []string{"T1", "T2", "T3", "T4", "T5"}, wantImg: "https://ny.com/1.jpg",
		},
		{
			name: "currents", make: func(c config.ProviderConfig) Provider { return NewCurrents(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k6"}, path: "/v1/latest-news",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k6", r.Header.Get("Authorization"))
				assert.Equal(t, "5", r.URL.Query().Get("page_size"))
			},
			response: `{"status":"ok","news":[
				{"id":"c1","title":"CU","description":"d","url":"https://cu.com/1","image":"None","published":"2025-06-01 10:00:00 +0000"}]}`,
			want: []string{"CU"}, wantImg: "",
		},
		{
			name: "mediastack", make: func(c config.ProviderConfig) Provider { return NewMediastack(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k7"}, path: "/v1/news",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k7", r.URL.Query().Get("access_key"))
				assert.Equal(t, "technology", r.URL.Query().Get("categories"))
				assert.Equal(t, "published_desc", r.URL.Query().Get("sort"))
			},
			response: `{"pagination":{},"data":[
				{"title":"MS","description":"d","url":"https://ms.com/1","image":"https://ms.com/1.jpg","published_at":"2025-06-01T10:00:00+00:00"}]}`,
			want: []string{"MS"}, wantImg: "https://ms.com/1.jpg",
		},
		{
			name: "thenewsapi", make: func(c config.ProviderConfig) Provider { return NewTheNewsAPI(c, nil) },
			cfg: config.ProviderConfig{APIKey: "k8"}, path: "/v1/news/top",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "k8", r.URL.Query().Get("api_token"))
				assert.Equal(t, "tech", r.URL.Query().Get("categories"))
				assert.Equal(t, "5", r.URL.Query().Get("limit"))
			},
			response: `{"data":[
				{"uuid":"u1","title":"TN","description":"d","snippet":"s","url":"https://tn.com/1","image_url":"https://tn.com/1.jpg","published_at":"2025-06-01T10:00:00.000000Z"}]}`,
			want: []string{"TN"}, wantImg: "https://tn.com/1.jpg",
		},
		{
			name: "googlenews", make: func(c config.ProviderConfig) Provider { return NewGoogleNews(c, nil) },
			cfg: config.ProviderConfig{Enabled: true}, path: "/rss/headlines/section/topic/TECHNOLOGY",
			check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "US:en", r.URL.Query().Get("ceid"))
			},
			response: `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Google News</title>
<item><title>GN story</title><link>https://gn.com/1</link><description>&lt;a href="x"&gt;GN story&lt;/a&gt;</description><pubDate>Sun, 01 Jun 2025 10:00:00 GMT</pubDate></item>
</channel></rss>`,
			want: []string{"GN story"}, wantImg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				tt.check(t, r)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer ts.Close()

			cfg := tt.cfg
			cfg.Endpoint = ts.URL
			p := tt.make(cfg)
			assert.True(t, p.Configured())

			res := p.Fetch(context.Background(), domain.CategoryTechnology, 5)
			require.True(t, res.OK(), "unexpected error: %v", res.Err)
			assert.Nil(t, res.Error)
			assert.Equal(t, tt.name, res.ProviderName)

			headlines := make([]string, 0, len(res.Articles))
			for _, a := range res.Articles {
				headlines = append(headlines, a.Headline)
				assert.Equal(t, tt.name, a.SourceProvider)
				assert.Equal(t, domain.CategoryTechnology, a.Category)
				assert.NotEmpty(t, a.ID)
				assert.NotEmpty(t, a.Summary)
				assert.False(t, a.PublishedAt.IsZero())
			}
			assert.Equal(t, tt.want, headlines)
			assert.Equal(t, tt.wantImg, res.Articles[0].ImageURL)
		})
	}
}

func TestAdapters_MissingKey(t *testing.T) {
	var called bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer ts.Close()

	for _, p := range New(map[domain.ProviderID]config.ProviderConfig{}, ts.Client()) {
		t.Run(string(p.ID()), func(t *testing.T) {
			assert.False(t, p.Configured())
			res := p.Fetch(context.Background(), domain.CategoryWorld, 10)
			require.False(t, res.OK())
			var cfgErr *domain.ConfigError
			require.ErrorAs(t, res.Err, &cfgErr)
			assert.Equal(t, string(p.ID()), cfgErr.Provider)
			require.NotNil(t, res.Error)
			assert.Equal(t, domain.ErrKindConfig, res.Error.Kind)
			assert.NotNil(t, res.Articles)
			assert.Empty(t, res.Articles)
		})
	}
	assert.False(t, called, "no outbound call without credentials")
}

func TestAdapters_HTTPErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"status":"error","code":"rateLimited"}`))
		}))
		defer ts.Close()

		res := NewNewsAPI(config.ProviderConfig{APIKey: "k", Endpoint: ts.URL}, nil).Fetch(context.Background(), "", 10)
		require.False(t, res.OK())
		var provErr *domain.ProviderError
		require.ErrorAs(t, res.Err, &provErr)
		assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
		assert.Contains(t, provErr.Body, "rateLimited")
		assert.True(t, provErr.Transient())
		assert.Equal(t, domain.ErrKindProvider, res.Error.Kind)
		assert.Equal(t, http.StatusTooManyRequests, res.Error.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"articles": [`))
		}))
		defer ts.Close()

		res := NewGNews(config.ProviderConfig{APIKey: "k", Endpoint: ts.URL}, nil).Fetch(context.Background(), "", 10)
		require.False(t, res.OK())
		assert.ErrorIs(t, res.Err, domain.ErrMalformedPayload)
		var provErr *domain.ProviderError
		require.ErrorAs(t, res.Err, &provErr)
		assert.False(t, provErr.Transient())
	})

	t.Run("mediastack error body with 200", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"code":"invalid_access_key","message":"You have not supplied a valid API Access Key."}}`))
		}))
		defer ts.Close()

		res := NewMediastack(config.ProviderConfig{APIKey: "k", Endpoint: ts.URL}, nil).Fetch(context.Background(), "", 10)
		require.False(t, res.OK())
		assert.ErrorIs(t, res.Err, domain.ErrRejected)
		assert.Contains(t, res.Err.Error(), "invalid_access_key")
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		res := NewGuardian(config.ProviderConfig{APIKey: "k", Endpoint: ts.URL}, nil).Fetch(ctx, "", 10)
		require.False(t, res.OK())
		assert.True(t, errors.Is(res.Err, context.DeadlineExceeded))
		assert.Equal(t, domain.ErrKindTimeout, res.Error.Kind)
	})
}

func TestAdapters_EmptyResultIsNotError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer ts.Close()

	res := NewNewsAPI(config.ProviderConfig{APIKey: "k", Endpoint: ts.URL}, nil).Fetch(context.Background(), "", 10)
	require.True(t, res.OK())
	assert.Nil(t, res.Error)
	assert.NotNil(t, res.Articles)
	assert.Empty(t, res.Articles)
}

func TestNew(t *testing.T) {
	providers := New(map[domain.ProviderID]config.ProviderConfig{
		domain.ProviderGNews:      {APIKey: "k"},
		domain.ProviderGoogleNews: {Enabled: true},
	}, nil)
	require.Len(t, providers, len(domain.AllProviders()))
	for i, id := range domain.AllProviders() {
		assert.Equal(t, id, providers[i].ID())
	}
	assert.True(t, providers[1].Configured())
	assert.True(t, providers[8].Configured())
	assert.False(t, providers[0].Configured())
	assert.Nil(t, NewProvider("bbc", config.ProviderConfig{}, nil))
}
