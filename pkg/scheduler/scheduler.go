package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate moq -out mocks/ainews.go -pkg mocks -skip-ensure -fmt goimports . AINews
//go:generate moq -out mocks/setting_manager.go -pkg mocks -skip-ensure -fmt goimports . SettingManager

// AINews is the AI news cache maintained by the scheduler
type AINews interface {
	GetOrRefresh(ctx context.Context, today time.Time) (*domain.AINewsCache, error)
	Refresh(ctx context.Context, today time.Time) *domain.AINewsCache
	Prune(ctx context.Context, now time.Time) (int64, error)
}

// SettingManager stores scheduler bookkeeping
type SettingManager interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	GetTime(ctx context.Context, key string) (time.Time, error)
	SetTime(ctx context.Context, key string, t time.Time) error
}

// Scheduler keeps the AI news cache warm, so the first request of a new day is served from storage
type Scheduler struct {
	aiNews         AINews
	settingManager SettingManager
	isPlaceholder  func(*domain.AINewsCache) bool
	canGenerate    bool
	interval       time.Duration
	maxRefreshes   int

	// placeholder regenerations done for refreshDay, loaded from settings on day change
	refreshDay   string
	refreshCount int

	now     func() time.Time
	runMu   sync.Mutex // one warm-up at a time
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	started bool
}

// Params for scheduler creation
type Params struct {
	AINews         AINews
	SettingManager SettingManager // optional

	// IsPlaceholder reports cached days holding only filler items, such days are regenerated
	// on warm-up while CanGenerate is set, at most MaxRefreshes times a day
	IsPlaceholder func(*domain.AINewsCache) bool
	CanGenerate   bool
	MaxRefreshes  int // defaults to 3

	WarmupInterval time.Duration // 0 disables the background worker
}

const defaultMaxRefreshes = 3

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	isPlaceholder := params.IsPlaceholder
	if isPlaceholder == nil {
		isPlaceholder = func(*domain.AINewsCache) bool { return false }
	}
	maxRefreshes := params.MaxRefreshes
	if maxRefreshes <= 0 {
		maxRefreshes = defaultMaxRefreshes
	}
	return &Scheduler{
		aiNews:         params.AINews,
		settingManager: params.SettingManager,
		isPlaceholder:  isPlaceholder,
		canGenerate:    params.CanGenerate,
		interval:       params.WarmupInterval,
		maxRefreshes:   maxRefreshes,
		now:            time.Now,
	}
}

// Start begins the warm-up worker, noop if interval is not set
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		lgr.Printf("[INFO] ai news warm-up disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.started = true

	s.wg.Add(1)
	go s.warmupWorker(ctx)

	lgr.Printf("[INFO] scheduler started with ai news warm-up interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// warmupWorker runs warm-up immediately and then on every tick
func (s *Scheduler) warmupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.WarmupNow(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.WarmupNow(ctx)
		}
	}
}

// WarmupNow makes sure today's AI news are stored, regenerating a placeholder day when generators exist,
// and prunes days past retention. Returns the number of pruned days.
func (s *Scheduler) WarmupNow(ctx context.Context) int64 {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	now := s.now()
	st := time.Now()
	cached, err := s.aiNews.GetOrRefresh(ctx, now)
	if err != nil {
		lgr.Printf("[ERROR] ai news warm-up failed: %v", err)
		return 0
	}
	if s.canGenerate && s.isPlaceholder(cached) {
		done := s.placeholderRefreshes(ctx, cached.Date)
		if done < s.maxRefreshes {
			lgr.Printf("[INFO] ai news for %s hold placeholders, regenerating (%d/%d)", cached.Date, done+1, s.maxRefreshes)
			date := cached.Date
			cached = s.aiNews.Refresh(ctx, now)
			s.storePlaceholderRefreshes(ctx, date, done+1)
		} else {
			lgr.Printf("[DEBUG] ai news for %s hold placeholders, %d regenerations used", cached.Date, done)
		}
	}

	deleted, err := s.aiNews.Prune(ctx, now)
	if err != nil {
		lgr.Printf("[WARN] ai news prune failed: %v", err)
	}

	if s.settingManager != nil {
		if err := s.settingManager.SetTime(ctx, domain.SettingLastWarmup, now); err != nil {
			lgr.Printf("[WARN] failed to store last warm-up time: %v", err)
		}
	}

	lgr.Printf("[DEBUG] ai news warm-up for %s done in %v, %d items, %d days pruned",
		cached.Date, time.Since(st), len(cached.News), deleted)
	return deleted
}

// LastWarmup returns the time of the last completed warm-up, zero if unknown
func (s *Scheduler) LastWarmup(ctx context.Context) time.Time {
	if s.settingManager == nil {
		return time.Time{}
	}
	ts, err := s.settingManager.GetTime(ctx, domain.SettingLastWarmup)
	if err != nil {
		lgr.Printf("[WARN] failed to get last warm-up time: %v", err)
		return time.Time{}
	}
	return ts
}

// placeholderRefreshes returns the number of placeholder regenerations done for date
func (s *Scheduler) placeholderRefreshes(ctx context.Context, date string) int {
	if s.refreshDay == date {
		return s.refreshCount
	}
	s.refreshDay, s.refreshCount = date, 0
	if s.settingManager == nil {
		return 0
	}
	v, err := s.settingManager.Get(ctx, domain.SettingPlaceholderRefreshes)
	if err != nil {
		lgr.Printf("[WARN] failed to load placeholder refreshes: %v", err)
		return 0
	}
	day, count, ok := strings.Cut(v, ":")
	if !ok || day != date {
		return 0
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return 0
	}
	s.refreshCount = n
	return n
}

func (s *Scheduler) storePlaceholderRefreshes(ctx context.Context, date string, n int) {
	s.refreshDay, s.refreshCount = date, n
	if s.settingManager == nil {
		return
	}
	if err := s.settingManager.Set(ctx, domain.SettingPlaceholderRefreshes, fmt.Sprintf("%s:%d", date, n)); err != nil {
		lgr.Printf("[WARN] failed to store placeholder refreshes: %v", err)
	}
}
