package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/scheduler/mocks"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func regularDay() *domain.AINewsCache {
	return &domain.AINewsCache{Date: "2025-06-01", News: []domain.Article{{Headline: "real", SourceProvider: "openai"}}}
}

func placeholderDay() *domain.AINewsCache {
	return &domain.AINewsCache{Date: "2025-06-01", News: []domain.Article{{Headline: "filler", SourceProvider: "placeholder"}}}
}

func isFiller(c *domain.AINewsCache) bool {
	return c != nil && len(c.News) > 0 && c.News[0].SourceProvider == "placeholder"
}

func newTestScheduler(params Params) *Scheduler {
	s := NewScheduler(params)
	s.now = func() time.Time { return testNow }
	return s
}

func TestNewScheduler(t *testing.T) {
	aiNews := &mocks.AINewsMock{}
	s := NewScheduler(Params{AINews: aiNews, WarmupInterval: 5 * time.Minute, CanGenerate: true})

	assert.NotNil(t, s)
	assert.Equal(t, 5*time.Minute, s.interval)
	assert.True(t, s.canGenerate)
	assert.Equal(t, 3, s.maxRefreshes)
	assert.False(t, s.isPlaceholder(placeholderDay()), "default placeholder check never matches")
}

func TestScheduler_WarmupNow(t *testing.T) {
	aiNews := &mocks.AINewsMock{
		GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
			return regularDay(), nil
		},
		PruneFunc: func(ctx context.Context, now time.Time) (int64, error) { return 2, nil },
	}
	settings := &mocks.SettingManagerMock{
		SetTimeFunc: func(ctx context.Context, key string, ts time.Time) error { return nil },
	}
	s := newTestScheduler(Params{AINews: aiNews, SettingManager: settings, IsPlaceholder: isFiller, CanGenerate: true})

	deleted := s.WarmupNow(context.Background())
	assert.Equal(t, int64(2), deleted)

	require.Len(t, aiNews.GetOrRefreshCalls(), 1)
	assert.Equal(t, testNow, aiNews.GetOrRefreshCalls()[0].Today)
	assert.Empty(t, aiNews.RefreshCalls(), "regular day is not regenerated")
	require.Len(t, aiNews.PruneCalls(), 1)
	assert.Equal(t, testNow, aiNews.PruneCalls()[0].Now)
	require.Len(t, settings.SetTimeCalls(), 1)
	assert.Equal(t, domain.SettingLastWarmup, settings.SetTimeCalls()[0].Key)
	assert.Equal(t, testNow, settings.SetTimeCalls()[0].T)
}

func TestScheduler_WarmupNow_Placeholder(t *testing.T) {
	newMock := func() *mocks.AINewsMock {
		return &mocks.AINewsMock{
			GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
				return placeholderDay(), nil
			},
			RefreshFunc: func(ctx context.Context, today time.Time) *domain.AINewsCache { return regularDay() },
			PruneFunc:   func(ctx context.Context, now time.Time) (int64, error) { return 0, nil },
		}
	}

	t.Run("regenerated when generators exist", func(t *testing.T) {
		aiNews := newMock()
		s := newTestScheduler(Params{AINews: aiNews, IsPlaceholder: isFiller, CanGenerate: true})
		s.WarmupNow(context.Background())
		assert.Len(t, aiNews.RefreshCalls(), 1)
	})

	t.Run("kept without generators", func(t *testing.T) {
		aiNews := newMock()
		s := newTestScheduler(Params{AINews: aiNews, IsPlaceholder: isFiller})
		s.WarmupNow(context.Background())
		assert.Empty(t, aiNews.RefreshCalls())
	})
}

// memSettings makes setting manager mock backed by a map
func memSettings() *mocks.SettingManagerMock {
	var mu sync.Mutex
	values := map[string]string{}
	return &mocks.SettingManagerMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return values[key], nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			values[key] = value
			return nil
		},
		SetTimeFunc: func(ctx context.Context, key string, ts time.Time) error { return nil },
	}
}

func TestScheduler_WarmupNow_RefreshLimit(t *testing.T) {
	day := testNow
	aiNews := &mocks.AINewsMock{
		GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
			res := placeholderDay()
			res.Date = domain.DateKey(today)
			return res, nil
		},
		RefreshFunc: func(ctx context.Context, today time.Time) *domain.AINewsCache {
			res := placeholderDay() // generators keep failing
			res.Date = domain.DateKey(today)
			return res
		},
		PruneFunc: func(ctx context.Context, now time.Time) (int64, error) { return 0, nil },
	}
	settings := memSettings()
	params := Params{AINews: aiNews, SettingManager: settings, IsPlaceholder: isFiller, CanGenerate: true, MaxRefreshes: 2}
	s := newTestScheduler(params)
	s.now = func() time.Time { return day }

	for range 5 {
		s.WarmupNow(context.Background())
	}
	assert.Len(t, aiNews.RefreshCalls(), 2, "capped per day")
	require.Len(t, settings.SetCalls(), 2)
	assert.Equal(t, domain.SettingPlaceholderRefreshes, settings.SetCalls()[1].Key)
	assert.Equal(t, "2025-06-01:2", settings.SetCalls()[1].Value)

	// restarted scheduler picks the count from settings
	restarted := newTestScheduler(params)
	restarted.WarmupNow(context.Background())
	assert.Len(t, aiNews.RefreshCalls(), 2)

	// next day starts over
	day = testNow.AddDate(0, 0, 1)
	s.WarmupNow(context.Background())
	assert.Len(t, aiNews.RefreshCalls(), 3)
	assert.Equal(t, "2025-06-02:1", settings.SetCalls()[2].Value)
}

func TestScheduler_WarmupNow_Errors(t *testing.T) {
	t.Run("storage read failure stops warm-up", func(t *testing.T) {
		aiNews := &mocks.AINewsMock{
			GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
				return nil, errors.New("db is gone")
			},
		}
		settings := &mocks.SettingManagerMock{}
		s := newTestScheduler(Params{AINews: aiNews, SettingManager: settings})
		assert.Zero(t, s.WarmupNow(context.Background()))
		assert.Empty(t, aiNews.PruneCalls())
		assert.Empty(t, settings.SetTimeCalls())
	})

	t.Run("prune and setting failures are logged", func(t *testing.T) {
		aiNews := &mocks.AINewsMock{
			GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
				return regularDay(), nil
			},
			PruneFunc: func(ctx context.Context, now time.Time) (int64, error) { return 0, errors.New("locked") },
		}
		settings := &mocks.SettingManagerMock{
			SetTimeFunc: func(ctx context.Context, key string, ts time.Time) error { return errors.New("locked") },
		}
		s := newTestScheduler(Params{AINews: aiNews, SettingManager: settings})
		assert.Zero(t, s.WarmupNow(context.Background()))
		assert.Len(t, settings.SetTimeCalls(), 1)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	var calls atomic.Int32
	aiNews := &mocks.AINewsMock{
		GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
			calls.Add(1)
			return regularDay(), nil
		},
		PruneFunc: func(ctx context.Context, now time.Time) (int64, error) { return 0, nil },
	}
	s := NewScheduler(Params{AINews: aiNews, WarmupInterval: 20 * time.Millisecond})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond,
		"runs on start and on every tick")
	s.Stop()

	stopped := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no runs after stop")
}

func TestScheduler_StartDisabled(t *testing.T) {
	aiNews := &mocks.AINewsMock{}
	s := NewScheduler(Params{AINews: aiNews})
	s.Start(context.Background())
	s.Stop()
	assert.Empty(t, aiNews.GetOrRefreshCalls())
}

func TestScheduler_StopOnContextCancel(t *testing.T) {
	aiNews := &mocks.AINewsMock{
		GetOrRefreshFunc: func(ctx context.Context, today time.Time) (*domain.AINewsCache, error) {
			return regularDay(), nil
		},
		PruneFunc: func(ctx context.Context, now time.Time) (int64, error) { return 0, nil },
	}
	s := NewScheduler(Params{AINews: aiNews, WarmupInterval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_LastWarmup(t *testing.T) {
	t.Run("no setting manager", func(t *testing.T) {
		s := NewScheduler(Params{})
		assert.True(t, s.LastWarmup(context.Background()).IsZero())
	})

	t.Run("stored value", func(t *testing.T) {
		settings := &mocks.SettingManagerMock{
			GetTimeFunc: func(ctx context.Context, key string) (time.Time, error) {
				assert.Equal(t, domain.SettingLastWarmup, key)
				return testNow, nil
			},
		}
		s := NewScheduler(Params{SettingManager: settings})
		assert.Equal(t, testNow, s.LastWarmup(context.Background()))
	})

	t.Run("error", func(t *testing.T) {
		settings := &mocks.SettingManagerMock{
			GetTimeFunc: func(ctx context.Context, key string) (time.Time, error) {
				return time.Time{}, errors.New("boom")
			},
		}
		s := NewScheduler(Params{SettingManager: settings})
		assert.True(t, s.LastWarmup(context.Background()).IsZero())
	})
}
