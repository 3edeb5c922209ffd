package recommender

import (
	"fmt"

	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// fakeTracker is a CTRTracker with canned CTR values and an impression
// recorder, for scorer tests that need exact boost arithmetic.
type fakeTracker struct {
	ctrs        map[string]float64
	impressions []uint64
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{ctrs: make(map[string]float64)}
}

func (f *fakeTracker) set(dim ctr.Dimension, value string, v float64) {
	f.ctrs[fmt.Sprintf("%s|%s", dim.Key(), value)] = v
}

func (f *fakeTracker) CTR(dim ctr.Dimension, value string) float64 {
	return f.ctrs[fmt.Sprintf("%s|%s", dim.Key(), value)]
}

func (f *fakeTracker) RecordImpression(userID uint, productID uint64, attrs ctr.AttributeSet) {
	f.impressions = append(f.impressions, productID)
}

// boostScenario is the three-candidate catalog used across the content
// scorer tests: a seed product the user purchased (brand X, red) plus
// candidates A (familiar brand + discount + color), B (familiar brand only)
// and C (new brand, big discount, color match). All share the same content
// vector so similarity is identical.
func boostScenario() *Snapshot {
	products := []domain.Product{
		{ID: 1, Brand: "X", Category: "shoes", Color: "red", DiscountPercent: 20, Availability: domain.AvailabilityInStock},
		{ID: 2, Brand: "X", Category: "shoes", Color: "blue", DiscountPercent: 0, Availability: domain.AvailabilityInStock},
		{ID: 3, Brand: "Y", Category: "shoes", Color: "red", DiscountPercent: 50, Availability: domain.AvailabilityInStock},
		{ID: 10, Brand: "X", Category: "shoes", Color: "red", Availability: domain.AvailabilityInStock},
	}

	vectors := map[uint64][]float64{
		1:  {1, 0},
		2:  {1, 0},
		3:  {1, 0},
		10: {1, 0},
	}

	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventPurchase},
	}

	return NewSnapshot(products, vectors, events)
}
