package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdeck/pkg/domain"
)

// AINewsRepository keeps one row of AI generated news per calendar day
type AINewsRepository struct {
	db *sqlx.DB
}

// NewAINewsRepository creates a new AI news repository
func NewAINewsRepository(db *sqlx.DB) *AINewsRepository {
	return &AINewsRepository{db: db}
}

type aiNewsRow struct {
	Date      string    `db:"date"`
	News      string    `db:"news"`
	CreatedAt time.Time `db:"created_at"`
}

// GetByDate returns the row for date (YYYY-MM-DD), nil without error if there is none
func (r *AINewsRepository) GetByDate(ctx context.Context, date string) (*domain.AINewsCache, error) {
	var row aiNewsRow
	err := r.db.GetContext(ctx, &row, "SELECT date, news, created_at FROM ai_news WHERE date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ai news for %s: %w", date, err)
	}

	res := &domain.AINewsCache{Date: row.Date, CreatedAt: row.CreatedAt}
	if err := json.Unmarshal([]byte(row.News), &res.News); err != nil {
		return nil, fmt.Errorf("unmarshal ai news for %s: %w", date, err)
	}
	if res.News == nil {
		res.News = []domain.Article{}
	}
	return res, nil
}

// Upsert inserts or replaces the row keyed by date
func (r *AINewsRepository) Upsert(ctx context.Context, c domain.AINewsCache) error {
	if c.Date == "" {
		return errors.New("upsert ai news: empty date")
	}
	news := c.News
	if news == nil {
		news = []domain.Article{}
	}
	data, err := json.Marshal(news)
	if err != nil {
		return fmt.Errorf("marshal ai news: %w", err)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = timeNow().UTC()
	}

	query := `INSERT INTO ai_news (date, news, created_at) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET news = excluded.news, created_at = excluded.created_at`
	return withLockRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, c.Date, string(data), c.CreatedAt); err != nil {
			return fmt.Errorf("upsert ai news for %s: %w", c.Date, err)
		}
		return nil
	})
}

// Prune deletes rows dated before the given date (YYYY-MM-DD), returns number of deleted rows
func (r *AINewsRepository) Prune(ctx context.Context, before string) (int64, error) {
	var deleted int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM ai_news WHERE date < ?", before)
		if err != nil {
			return fmt.Errorf("prune ai news before %s: %w", before, err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	return deleted, err
}

// Dates returns stored dates, newest first
func (r *AINewsRepository) Dates(ctx context.Context) ([]string, error) {
	var dates []string
	if err := r.db.SelectContext(ctx, &dates, "SELECT date FROM ai_news ORDER BY date DESC"); err != nil {
		return nil, fmt.Errorf("list ai news dates: %w", err)
	}
	return dates, nil
}
