package postgres

import (
	"context"
	"fmt"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"

	"gorm.io/gorm"
)

// ExposureRepository persists impression/click rows so the in-memory ledger
// can be audited and replayed.
type ExposureRepository struct {
	DB *gorm.DB
}

func NewExposureRepository(db *gorm.DB) *ExposureRepository {
	return &ExposureRepository{DB: db}
}

func (r *ExposureRepository) Save(ctx context.Context, row domain.ExposureRow) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save exposure row: %w", err)
	}

	return nil
}

// FindByUser returns a user's exposure history, newest first.
func (r *ExposureRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.ExposureRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.ExposureRow
	q := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query exposure_log: %w", err)
	}

	return rows, nil
}
