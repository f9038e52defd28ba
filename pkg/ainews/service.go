// Package ainews materializes AI-generated news once per calendar day.
//
// On the first request of a day every generator is asked for every category, the responses are parsed,
// deduplicated and stored. Later requests of the same day are served from storage without outbound calls.
package ainews

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/umputun/newsdeck/pkg/aggregator"
	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/provider"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

const (
	perCategoryLimit = 10
	totalLimit       = 50
)

// Store keeps one AINewsCache row per day
type Store interface {
	GetByDate(ctx context.Context, date string) (*domain.AINewsCache, error)
	Upsert(ctx context.Context, c domain.AINewsCache) error
	Prune(ctx context.Context, before string) (int64, error)
}

// Recorder receives the outcome of generation calls and refreshes
type Recorder interface {
	GenerationCall(generator string, duration time.Duration, err error)
	AINewsRefresh(items int, placeholder bool)
}

// Service is the AI news cache
type Service struct {
	store         Store
	generators    []Generator
	categories    []string
	timeout       time.Duration
	maxWorkers    int
	retentionDays int
	recorder      Recorder

	limiters map[string]*rate.Limiter
	group    singleflight.Group
	now      func() time.Time
}

// Config holds configuration for Service
type Config struct {
	Store         Store
	Generators    []Generator
	Categories    []string
	Timeout       time.Duration // per generation call
	RateLimit     time.Duration // min interval between calls to one generator, 0 disables
	MaxWorkers    int
	RetentionDays int      // 0 keeps everything
	Recorder      Recorder // optional
}

// NewService makes AI news service
func NewService(cfg Config) *Service {
	res := &Service{
		store:         cfg.Store,
		generators:    cfg.Generators,
		categories:    cfg.Categories,
		timeout:       cfg.Timeout,
		maxWorkers:    cfg.MaxWorkers,
		retentionDays: cfg.RetentionDays,
		recorder:      cfg.Recorder,
		limiters:      make(map[string]*rate.Limiter, len(cfg.Generators)),
		now:           time.Now,
	}
	if res.timeout <= 0 {
		res.timeout = 15 * time.Second
	}
	if res.maxWorkers <= 0 {
		res.maxWorkers = 4
	}
	for _, g := range cfg.Generators {
		limit := rate.Inf
		if cfg.RateLimit > 0 {
			limit = rate.Every(cfg.RateLimit)
		}
		res.limiters[g.ID()] = rate.NewLimiter(limit, 1)
	}
	return res
}

// GetOrRefresh returns AI news for the day of today, generating and storing them on the first call of the day.
// Concurrent first calls share one generation. The only error is a storage read failure.
func (s *Service) GetOrRefresh(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
	date := domain.DateKey(today)
	cached, err := s.store.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get cached ai news: %w", err)
	}
	if cached != nil {
		lgr.Printf("[DEBUG] ai news for %s served from cache, %d items", date, len(cached.News))
		return cached, nil
	}

	v, err, shared := s.group.Do(date, func() (any, error) {
		// other flight could have stored the row while we were checking
		if c, err := s.store.GetByDate(ctx, date); err == nil && c != nil {
			return c, nil
		}
		return s.refresh(context.WithoutCancel(ctx), today), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		lgr.Printf("[DEBUG] ai news for %s shared with concurrent request", date)
	}
	return v.(*domain.AINewsCache), nil
}

// Refresh regenerates AI news for the day of today and replaces the stored row
func (s *Service) Refresh(ctx context.Context, today time.Time) *domain.AINewsCache {
	v, _, _ := s.group.Do(domain.DateKey(today), func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx), today), nil
	})
	return v.(*domain.AINewsCache)
}

// Prune removes stored days older than retention, relative to now
func (s *Service) Prune(ctx context.Context, now time.Time) (int64, error) {
	if s.retentionDays <= 0 {
		return 0, nil
	}
	before := domain.DateKey(now.AddDate(0, 0, -s.retentionDays))
	deleted, err := s.store.Prune(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("prune ai news: %w", err)
	}
	if deleted > 0 {
		lgr.Printf("[INFO] pruned %d ai news days before %s", deleted, before)
	}
	return deleted, nil
}

// Categories returns categories generated every day
func (s *Service) Categories() []string {
	return s.categories
}

// refresh runs the generation fan-out and stores the result. Storage failures are logged,
// the generated news are returned anyway.
func (s *Service) refresh(ctx context.Context, today time.Time) *domain.AINewsCache {
	st := s.now()
	news := s.generate(ctx, today)
	placeholder := false
	if len(news) == 0 {
		lgr.Printf("[WARN] ai news generation produced nothing for %s, using placeholders", domain.DateKey(today))
		news = limit(placeholders(s.categories, today), s.categories)
		placeholder = true
	}

	res := &domain.AINewsCache{Date: domain.DateKey(today), News: news, CreatedAt: s.now().UTC()}
	if err := s.store.Upsert(ctx, *res); err != nil {
		lgr.Printf("[ERROR] failed to store ai news for %s: %v", res.Date, err)
	} else if _, err := s.Prune(ctx, today); err != nil {
		lgr.Printf("[WARN] %v", err)
	}
	if s.recorder != nil {
		s.recorder.AINewsRefresh(len(news), placeholder)
	}
	lgr.Printf("[INFO] ai news for %s refreshed, %d items in %v", res.Date, len(news), s.now().Sub(st))
	return res
}

// cell is one generator × category call
type cell struct {
	generator Generator
	category  string
	items     []rawItem
	err       error
}

// generate asks every generator about every category and merges the parsed items
func (s *Service) generate(ctx context.Context, today time.Time) []domain.Article {
	cells := make([]cell, 0, len(s.generators)*len(s.categories))
	for _, g := range s.generators {
		for _, c := range s.categories {
			cells = append(cells, cell{generator: g, category: c})
		}
	}

	var g errgroup.Group
	g.SetLimit(s.maxWorkers)
	for i := range cells {
		g.Go(func() error {
			cells[i].items, cells[i].err = s.call(ctx, cells[i].generator, cells[i].category, today)
			return nil
		})
	}
	_ = g.Wait()

	var articles []domain.Article
	failed := 0
	for _, c := range cells {
		if c.err != nil {
			failed++
			lgr.Printf("[WARN] ai generator %s failed for %s: %v", c.generator.ID(), c.category, c.err)
		}
		for _, it := range c.items {
			articles = append(articles, toArticle(c.generator.ID(), c.category, it, today))
		}
	}
	lgr.Printf("[DEBUG] ai news fan-out: %d cells, %d failed, %d raw items", len(cells), failed, len(articles))

	return limit(aggregator.Dedupe(articles), s.categories)
}

// call runs one cell, waiting for the generator rate limiter first
func (s *Service) call(ctx context.Context, g Generator, category string, today time.Time) ([]rawItem, error) {
	if l, ok := s.limiters[g.ID()]; ok {
		if err := l.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	st := s.now()
	text, err := g.Generate(callCtx, category, today)
	var items []rawItem
	if err == nil {
		items, err = parseItems(g.ID(), text)
	}
	if s.recorder != nil {
		s.recorder.GenerationCall(g.ID(), s.now().Sub(st), err)
	}
	return items, err
}

func toArticle(generator, category string, it rawItem, today time.Time) domain.Article {
	headline := it.headline()
	url := strings.TrimSpace(it.URL)
	return domain.Article{
		ID:             provider.ArticleID(generator, url, headline),
		Headline:       headline,
		Summary:        it.summary(),
		URL:            url,
		PublishedAt:    today.UTC(),
		SourceProvider: generator,
		Category:       category,
	}
}

// limit keeps at most perCategoryLimit items per category, grouped in categories order,
// then at most totalLimit items overall. Items of unknown categories go last.
func limit(articles []domain.Article, categories []string) []domain.Article {
	byCategory := map[string][]domain.Article{}
	var extra []string
	for _, a := range articles {
		if a.Headline == "" {
			continue
		}
		if _, ok := byCategory[a.Category]; !ok && !contains(categories, a.Category) {
			extra = append(extra, a.Category)
		}
		if len(byCategory[a.Category]) < perCategoryLimit {
			byCategory[a.Category] = append(byCategory[a.Category], a)
		}
	}

	res := make([]domain.Article, 0, totalLimit)
	visited := map[string]bool{}
	for _, c := range append(append([]string{}, categories...), extra...) {
		if visited[c] {
			continue
		}
		visited[c] = true
		for _, a := range byCategory[c] {
			if len(res) == totalLimit {
				return res
			}
			res = append(res, a)
		}
	}
	return res
}
