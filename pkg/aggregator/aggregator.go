// Package aggregator fans a news request out to provider adapters and joins the results.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/provider"
)

//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// Recorder receives the outcome of every provider call
type Recorder interface {
	ProviderCall(provider string, duration time.Duration, err error)
}

// Aggregator merges articles of several providers.
// It is responsible for:
//   - Invoking one named provider, or all of them concurrently
//   - Waiting for every provider call to settle, never cancelling siblings
//   - Retrying transient provider failures with backoff
//   - Deduplicating by headline and sorting newest first
//
// Provider failures are never returned as errors, they are recorded in Result.
type Aggregator struct {
	providers []provider.Provider
	byID      map[domain.ProviderID]provider.Provider
	recorder  Recorder

	timeout       time.Duration
	maxWorkers    int
	retryAttempts int
	retryDelay    time.Duration
	pageSize      int
	now           func() time.Time
}

// Config holds configuration for Aggregator
type Config struct {
	Providers     []provider.Provider
	Recorder      Recorder // optional
	Timeout       time.Duration
	MaxWorkers    int
	RetryAttempts int
	RetryDelay    time.Duration
	PageSize      int
}

// Result of one aggregation.
// Err is set in single-provider mode when that provider failed or is unknown,
// and in "all" mode when no articles were collected (domain.ErrNoArticles).
type Result struct {
	Articles  []domain.Article
	Providers []domain.ProviderResult
	Source    string // provider id for single-provider mode, "all" otherwise
	Err       error
}

// New makes Aggregator, zero config values replaced by defaults
func New(cfg Config) *Aggregator {
	res := &Aggregator{
		providers:     cfg.Providers,
		byID:          make(map[domain.ProviderID]provider.Provider, len(cfg.Providers)),
		recorder:      cfg.Recorder,
		timeout:       cfg.Timeout,
		maxWorkers:    cfg.MaxWorkers,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		pageSize:      cfg.PageSize,
		now:           time.Now,
	}
	for _, p := range cfg.Providers {
		res.byID[p.ID()] = p
	}
	if res.timeout <= 0 {
		res.timeout = 12 * time.Second
	}
	if res.maxWorkers <= 0 {
		res.maxWorkers = 10
	}
	if res.retryAttempts <= 0 {
		res.retryAttempts = 1
	}
	if res.retryDelay <= 0 {
		res.retryDelay = 300 * time.Millisecond
	}
	if res.pageSize <= 0 {
		res.pageSize = 20
	}
	return res
}

// Providers returns all providers in iteration order
func (a *Aggregator) Providers() []provider.Provider {
	return a.providers
}

// Aggregate collects articles of the category from the selected provider, or from all
// providers for domain.SelectAll selector. Non-positive pageSize means default page size.
func (a *Aggregator) Aggregate(ctx context.Context, category, selector string, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = a.pageSize
	}

	if selector == "" || selector == domain.SelectAll {
		return a.aggregateAll(ctx, category, pageSize)
	}

	p, ok := a.byID[domain.ProviderID(selector)]
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrUnknownProvider, selector)
		return Result{Articles: []domain.Article{}, Providers: []domain.ProviderResult{}, Source: selector, Err: err}
	}

	pr := a.call(ctx, p, category, pageSize)
	res := Result{Providers: []domain.ProviderResult{pr}, Source: selector, Err: pr.Err}
	res.Articles = a.merge([]domain.ProviderResult{pr})
	return res
}

func (a *Aggregator) aggregateAll(ctx context.Context, category string, pageSize int) Result {
	results := make([]domain.ProviderResult, len(a.providers))

	// no errgroup context, a failed provider must not cancel its siblings
	var g errgroup.Group
	g.SetLimit(a.maxWorkers)
	for i, p := range a.providers {
		g.Go(func() error {
			results[i] = a.call(ctx, p, category, pageSize)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
			lgr.Printf("[WARN] provider %s failed: %v", r.ProviderName, r.Err)
		}
	}

	res := Result{Articles: a.merge(results), Providers: results, Source: domain.SelectAll}
	if len(res.Articles) == 0 {
		res.Err = domain.ErrNoArticles
	}
	lgr.Printf("[DEBUG] aggregated %d articles for %q from %d providers, %d failed",
		len(res.Articles), category, len(results), failed)
	return res
}

// call invokes provider with per-call timeout, retrying transient failures
func (a *Aggregator) call(ctx context.Context, p provider.Provider, category string, pageSize int) domain.ProviderResult {
	var last domain.ProviderResult
	st := a.now()

	retrier := repeater.NewBackoff(a.retryAttempts, a.retryDelay, repeater.WithMaxDelay(5*a.retryDelay))
	_ = retrier.Do(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()
		last = p.Fetch(callCtx, category, pageSize)
		if last.OK() {
			return nil
		}
		if !transient(last.Err) {
			return errPermanent
		}
		lgr.Printf("[DEBUG] provider %s transient failure: %v", p.ID(), last.Err)
		return last.Err
	}, errPermanent)

	if last.ProviderName == "" {
		// context canceled before the first attempt
		err := ctx.Err()
		if err == nil {
			err = errors.New("provider was not called")
		}
		last = domain.FailedProviderResult(string(p.ID()), err)
	}
	if a.recorder != nil {
		a.recorder.ProviderCall(string(p.ID()), a.now().Sub(st), last.Err)
	}
	return last
}

// errPermanent stops retries for failures repeating can't fix
var errPermanent = errors.New("permanent failure")

// transient reports whether the error is worth retrying: network failures, timeouts, 429 and 5xx
func transient(err error) bool {
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		return false
	}
	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		return provErr.Transient()
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// merge concatenates articles of successful results in iteration order,
// removes headline duplicates keeping the first one and sorts newest first
func (a *Aggregator) merge(results []domain.ProviderResult) []domain.Article {
	var all []domain.Article
	for _, r := range results {
		if r.OK() {
			all = append(all, r.Articles...)
		}
	}
	return SortByRecency(Dedupe(all), a.now())
}

// Dedupe removes articles with a headline seen before, case-sensitive, keeping the first occurrence
func Dedupe(articles []domain.Article) []domain.Article {
	res := make([]domain.Article, 0, len(articles))
	seen := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.Headline]; ok {
			continue
		}
		seen[a.Headline] = struct{}{}
		res = append(res, a)
	}
	return res
}

// SortByRecency sorts articles newest first, in place. Articles without timestamp count as published now.
// Equal timestamps keep their relative order.
func SortByRecency(articles []domain.Article, now time.Time) []domain.Article {
	ts := func(a domain.Article) time.Time {
		if a.PublishedAt.IsZero() {
			return now
		}
		return a.PublishedAt
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return ts(articles[i]).After(ts(articles[j]))
	})
	return articles
}
