package ctr

import (
	"fmt"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// Dimension is one attribute axis the ledger tracks CTR for. Keeping this a
// tagged enum (instead of ad hoc string keys) means adding a dimension is a
// compile-time change everywhere it is consumed.
type Dimension int

const (
	DimensionBrand Dimension = iota
	DimensionCategory
	DimensionColor
	DimensionDiscountTier
)

func (d Dimension) Key() string {
	switch d {
	case DimensionBrand:
		return "brand"
	case DimensionCategory:
		return "category"
	case DimensionColor:
		return "color"
	case DimensionDiscountTier:
		return "discount_tier"
	default:
		return fmt.Sprintf("dimension_%d", int(d))
	}
}

// AttributeSet is the attribute snapshot counted for one impression or click.
type AttributeSet map[Dimension]string

// AttributesOf extracts the trackable attribute values of a product. Missing
// attributes are simply absent from the set, so they are never counted.
func AttributesOf(p domain.Product) AttributeSet {
	attrs := make(AttributeSet, 4)

	if p.Brand != "" {
		attrs[DimensionBrand] = p.Brand
	}
	if p.Category != "" {
		attrs[DimensionCategory] = p.Category
	}
	if p.Color != "" {
		attrs[DimensionColor] = p.Color
	}
	if p.DiscountPercent > 0 {
		attrs[DimensionDiscountTier] = DiscountTier(p.DiscountPercent)
	}

	return attrs
}

// DiscountTier buckets a discount percentage into the tier label tracked by
// the ledger.
func DiscountTier(pct float64) string {
	switch {
	case pct <= 0:
		return "0"
	case pct <= 10:
		return "1-10"
	case pct <= 25:
		return "11-25"
	case pct <= 50:
		return "26-50"
	default:
		return "51-100"
	}
}
