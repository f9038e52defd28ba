package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdeck/pkg/aggregator"
	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/interleave"
)

// envelope statuses
const (
	statusOK    = "ok"
	statusError = "error"
)

// errorSourceRequest marks errors of the request itself, not of a provider
const errorSourceRequest = "request"

// maxPageSize caps requested page size, providers clamp further to their own ceilings
const maxPageSize = 200

// newsResponse is the response wrapper of news endpoints
type newsResponse struct {
	Response newsEnvelope `json:"response"`
}

type newsEnvelope struct {
	Status      string           `json:"status"`
	Results     any              `json:"results"`
	Error       string           `json:"error,omitempty"`
	ErrorSource string           `json:"errorSource,omitempty"`
	Providers   []providerStatus `json:"providers,omitempty"`
}

// providerStatus is per-provider diagnostic, without the articles
type providerStatus struct {
	Provider string            `json:"provider"`
	Status   string            `json:"status"`
	Articles int               `json:"articles"`
	Error    *domain.ErrorInfo `json:"error,omitempty"`
}

// newsQuery is the parsed news request
type newsQuery struct {
	category   string
	newsAgency string
	pageSize   int
}

func parseNewsQuery(r *http.Request) (newsQuery, error) {
	q := newsQuery{
		category:   r.URL.Query().Get("category"),
		newsAgency: r.URL.Query().Get("newsAgency"),
	}
	if q.category == "" {
		q.category = domain.CategoryTodaysNews
	}
	if q.newsAgency == "" {
		q.newsAgency = domain.SelectAll
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			return q, fmt.Errorf("invalid pageSize %q", v)
		}
		q.pageSize = min(size, maxPageSize)
	}
	return q, nil
}

// renderQueryError reports a malformed request in the news envelope
func renderQueryError(w http.ResponseWriter, r *http.Request, err error) {
	renderJSON(w, r, http.StatusBadRequest, newsResponse{Response: newsEnvelope{
		Status: statusError, Results: []domain.Article{}, Error: err.Error(), ErrorSource: errorSourceRequest}})
}

// newsHandler returns aggregated articles, GET /api/v1/news?category=&newsAgency=&pageSize=
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	q, err := parseNewsQuery(r)
	if err != nil {
		renderQueryError(w, r, err)
		return
	}

	res := s.aggregator.Aggregate(r.Context(), q.category, q.newsAgency, q.pageSize)
	code, env := newsResult(res)
	env.Results = res.Articles
	renderJSON(w, r, code, newsResponse{Response: env})
}

// feedHandler returns aggregated articles interleaved with active ads, GET /api/v1/feed
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	q, err := parseNewsQuery(r)
	if err != nil {
		renderQueryError(w, r, err)
		return
	}

	res := s.aggregator.Aggregate(r.Context(), q.category, q.newsAgency, q.pageSize)
	code, env := newsResult(res)
	env.Results = interleave.Merge(res.Articles, s.activeAds(r))
	renderJSON(w, r, code, newsResponse{Response: env})
}

// providersHandler lists known providers and whether each has credentials
func (s *Server) providersHandler(w http.ResponseWriter, r *http.Request) {
	type providerInfo struct {
		ID         domain.ProviderID `json:"id"`
		Configured bool              `json:"configured"`
	}
	providers := s.aggregator.Providers()
	res := make([]providerInfo, 0, len(providers))
	for _, p := range providers {
		res = append(res, providerInfo{ID: p.ID(), Configured: p.Configured()})
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"providers": res})
}

// categoriesHandler lists logical news categories and AI news categories
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{
		"categories":   domain.Categories(),
		"aiCategories": s.aiNews.Categories(),
	})
}

// activeAds returns active ads, empty on storage failure. Ads are optional for the feed.
func (s *Server) activeAds(r *http.Request) []domain.Advertisement {
	if s.ads == nil {
		return nil
	}
	ads, err := s.ads.ListActive(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to list active ads: %v", err)
		return nil
	}
	return ads
}

// newsResult maps aggregation result to http code and envelope without results.
// Single-provider failures are user visible, "all" mode with nothing collected is an empty state.
func newsResult(res aggregator.Result) (int, newsEnvelope) {
	env := newsEnvelope{Status: statusOK, Providers: providerStatuses(res.Providers)}
	if res.Err == nil {
		return http.StatusOK, env
	}

	env.Status = statusError
	env.Error = res.Err.Error()
	env.ErrorSource = res.Source

	var cfgErr *domain.ConfigError
	switch {
	case errors.Is(res.Err, domain.ErrNoArticles):
		return http.StatusOK, env
	case errors.Is(res.Err, domain.ErrUnknownProvider):
		return http.StatusBadRequest, env
	case errors.As(res.Err, &cfgErr):
		return http.StatusServiceUnavailable, env
	}
	return http.StatusBadGateway, env
}

func providerStatuses(results []domain.ProviderResult) []providerStatus {
	res := make([]providerStatus, 0, len(results))
	for _, pr := range results {
		st := providerStatus{Provider: pr.ProviderName, Status: statusOK, Articles: len(pr.Articles), Error: pr.Error}
		if !pr.OK() {
			st.Status = statusError
		}
		res = append(res, st)
	}
	return res
}
