package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VectorRepository reads the externally maintained content-vector table.
type VectorRepository struct {
	DB *gorm.DB
}

func NewVectorRepository(db *gorm.DB) *VectorRepository {
	return &VectorRepository{DB: db}
}

func (r *VectorRepository) FindAll(ctx context.Context) (map[uint64][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.ProductVector
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query product_vectors: %w", err)
	}

	out := make(map[uint64][]float64, len(rows))
	for _, row := range rows {
		var vec []float64
		if err := json.Unmarshal(row.Vector, &vec); err != nil {
			logger.Warn("skipping malformed product vector", "product_id", row.ProductID)
			continue
		}
		out[row.ProductID] = vec
	}

	return out, nil
}

func (r *VectorRepository) Upsert(ctx context.Context, productID uint64, vector []float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("failed to marshal vector: %w", err)
	}

	row := domain.ProductVector{
		ProductID: productID,
		Vector:    raw,
	}

	if err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		},
	).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert product vector: %w", err)
	}

	return nil
}
