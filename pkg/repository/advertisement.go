package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdeck/pkg/domain"
)

// AdvertisementRepository reads and manages sponsored slots
type AdvertisementRepository struct {
	db *sqlx.DB
}

// NewAdvertisementRepository creates a new advertisement repository
func NewAdvertisementRepository(db *sqlx.DB) *AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

// ListActive returns active advertisements, oldest first, so round-robin order is stable
func (r *AdvertisementRepository) ListActive(ctx context.Context) ([]domain.Advertisement, error) {
	var ads []domain.Advertisement
	query := `SELECT id, title, description, image_url, link_url, active, created_at
		FROM advertisements WHERE active = 1 ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &ads, query); err != nil {
		return nil, fmt.Errorf("list active advertisements: %w", err)
	}
	if ads == nil {
		ads = []domain.Advertisement{}
	}
	return ads, nil
}

// Create inserts advertisement and sets its ID
func (r *AdvertisementRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = timeNow().UTC()
	}
	query := `INSERT INTO advertisements (title, description, image_url, link_url, active, created_at)
		VALUES (:title, :description, :image_url, :link_url, :active, :created_at)`

	return withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, ad)
		if err != nil {
			return fmt.Errorf("create advertisement: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		ad.ID = id
		return nil
	})
}

// SetActive enables or disables an advertisement
func (r *AdvertisementRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE advertisements SET active = ? WHERE id = ?", active, id)
		if err != nil {
			return fmt.Errorf("update advertisement %d: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("advertisement %d not found", id)
		}
		return nil
	})
}
