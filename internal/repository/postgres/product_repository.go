package postgres

import (
	"context"
	"fmt"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product
	if err := r.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return domain.Product{}, fmt.Errorf("failed to find product %d: %w", id, err)
	}

	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	if err := r.DB.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}
