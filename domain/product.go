package domain

import (
	"time"
)

// Availability of a catalog product. Anything but AvailabilityInStock is
// excluded from recommendation results.
type Availability string

const (
	AvailabilityInStock    Availability = "IN_STOCK"
	AvailabilityOutOfStock Availability = "OUT_OF_STOCK"
	AvailabilityUnknown    Availability = "UNKNOWN"
)

// Product is one catalog row. Immutable once loaded; scorers reference
// products by ID and never mutate them.
type Product struct {
	ID              uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand           string       `gorm:"column:brand;type:text" json:"brand"`
	Category        string       `gorm:"column:category;type:text" json:"category"`
	Price           float64      `gorm:"column:price;type:numeric" json:"price"`
	AgeGroup        string       `gorm:"column:age_group;type:text" json:"age_group"`
	Color           string       `gorm:"column:color;type:text" json:"color"`
	DiscountPercent float64      `gorm:"column:discount_percent;type:numeric" json:"discount_percent"`
	Availability    Availability `gorm:"column:availability;type:text;default:UNKNOWN" json:"availability"`
	CreatedAt       time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductVector is the externally computed content vector for one product.
// Vector construction (TF-IDF etc.) happens outside this service; we only
// read the rows. The vector itself is stored as a JSON float array.
type ProductVector struct {
	ProductID uint64 `gorm:"column:product_id;primaryKey" json:"product_id"`
	Vector    []byte `gorm:"column:vector;type:jsonb" json:"-"`
}

func (ProductVector) TableName() string {
	return "product_vectors"
}
