package postgres

import (
	"context"
	"fmt"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) SaveEvent(ctx context.Context, event domain.InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save interaction event: %w", err)
	}

	return nil
}

// FindAll returns the full append-only event log, oldest first, for matrix
// rebuilds.
func (r *InteractionRepository) FindAll(ctx context.Context) ([]domain.InteractionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.InteractionEvent
	if err := r.DB.WithContext(ctx).Order("created_at asc, id asc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query interaction_events: %w", err)
	}

	return events, nil
}
