package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc&_txlock=immediate",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))
	assert.NotNil(t, repos.Advertisement)
	assert.NotNil(t, repos.AINews)
	assert.NotNil(t, repos.Setting)

	// schema init is idempotent
	require.NoError(t, initSchema(context.Background(), repos.DB))
}

func TestAdvertisementRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	ads, err := repos.Advertisement.ListActive(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ads)
	assert.Empty(t, ads)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := &domain.Advertisement{Title: "First", Description: "d1", ImageURL: "https://ads.com/1.png",
		LinkURL: "https://ads.com/1", Active: true, CreatedAt: base}
	second := &domain.Advertisement{Title: "Second", LinkURL: "https://ads.com/2", Active: true, CreatedAt: base.Add(time.Hour)}
	inactive := &domain.Advertisement{Title: "Inactive", Active: false, CreatedAt: base.Add(-time.Hour)}
	for _, ad := range []*domain.Advertisement{second, inactive, first} {
		require.NoError(t, repos.Advertisement.Create(ctx, ad))
		assert.NotZero(t, ad.ID)
	}

	ads, err = repos.Advertisement.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "First", ads[0].Title, "oldest first")
	assert.Equal(t, "d1", ads[0].Description)
	assert.Equal(t, "https://ads.com/1.png", ads[0].ImageURL)
	assert.True(t, ads[0].Active)
	assert.True(t, ads[0].CreatedAt.Equal(base))
	assert.Equal(t, "Second", ads[1].Title)

	require.NoError(t, repos.Advertisement.SetActive(ctx, first.ID, false))
	require.NoError(t, repos.Advertisement.SetActive(ctx, inactive.ID, true))
	ads, err = repos.Advertisement.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "Inactive", ads[0].Title)
	assert.Equal(t, "Second", ads[1].Title)

	err = repos.Advertisement.SetActive(ctx, 9999, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAINewsRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	res, err := repos.AINews.GetByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Nil(t, res, "missing row is not an error")

	pub := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	row := domain.AINewsCache{Date: "2025-06-01", News: []domain.Article{
		{ID: "1", Headline: "AI one", Summary: "s1", PublishedAt: pub, SourceProvider: "openai", Category: "Technology"},
		{ID: "2", Headline: "AI two", Summary: "s2", PublishedAt: pub, SourceProvider: "gemini", Category: "World"},
	}}
	require.NoError(t, repos.AINews.Upsert(ctx, row))

	res, err = repos.AINews.GetByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "2025-06-01", res.Date)
	assert.Equal(t, row.News, res.News)
	assert.False(t, res.CreatedAt.IsZero())

	// upsert replaces the row for the same date
	row.News = row.News[:1]
	require.NoError(t, repos.AINews.Upsert(ctx, row))
	res, err = repos.AINews.GetByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, res.News, 1)

	var count int
	require.NoError(t, repos.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM ai_news"))
	assert.Equal(t, 1, count, "at most one row per date")

	require.Error(t, repos.AINews.Upsert(ctx, domain.AINewsCache{}))
}

func TestAINewsRepository_Prune(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for _, d := range []string{"2025-05-01", "2025-05-20", "2025-06-01"} {
		require.NoError(t, repos.AINews.Upsert(ctx, domain.AINewsCache{Date: d, News: []domain.Article{{Headline: d}}}))
	}

	deleted, err := repos.AINews.Prune(ctx, "2025-05-20")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	dates, err := repos.AINews.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-01", "2025-05-20"}, dates)
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	v, err := repos.Setting.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, repos.Setting.Set(ctx, "k", "v1"))
	require.NoError(t, repos.Setting.Set(ctx, "k", "v2"))
	v, err = repos.Setting.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	ts, err := repos.Setting.GetTime(ctx, domain.SettingLastWarmup)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	now := time.Date(2025, 6, 1, 10, 11, 12, 0, time.UTC)
	require.NoError(t, repos.Setting.SetTime(ctx, domain.SettingLastWarmup, now))
	ts, err = repos.Setting.GetTime(ctx, domain.SettingLastWarmup)
	require.NoError(t, err)
	assert.Equal(t, now, ts)
}

func TestWithLockRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked (SQLITE_BUSY)")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		origErr := errors.New("constraint failed")
		err := withLockRetry(context.Background(), func() error {
			calls++
			return origErr
		})
		require.Error(t, err)
		assert.Equal(t, origErr, err)
		assert.Equal(t, 1, calls)
	})
}
