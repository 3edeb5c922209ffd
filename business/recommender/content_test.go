package recommender

import (
	"math"
	"testing"

	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

const testN = 5

func TestContentBoostStacking(t *testing.T) {
	snap := boostScenario()
	cfg := DefaultConfig()
	profile := snap.Profiles.ProfileFor(1)

	recs := scoreContent(snap, profile, cfg, nil, testN, false)

	if len(recs) != 3 {
		t.Fatalf("got %d candidates, want 3 (purchased seed excluded): %v", len(recs), recs)
	}

	// With default constants: C (new brand 1.8 * discount 1.5 * color 1.3)
	// beats A (brand 1.5 * discount 1.2 * color 1.3) beats B (brand 1.5).
	if recs[0].ProductID != 3 || recs[1].ProductID != 1 || recs[2].ProductID != 2 {
		t.Fatalf("order = [%d %d %d], want [3 1 2]",
			recs[0].ProductID, recs[1].ProductID, recs[2].ProductID)
	}

	// the stacking invariant: color + discount on a familiar brand always
	// beats the bare familiar brand
	var scoreA, scoreB float64
	for _, r := range recs {
		switch r.ProductID {
		case 1:
			scoreA = r.Score
		case 2:
			scoreB = r.Score
		}
	}
	if scoreA <= scoreB {
		t.Errorf("A (%f) must outrank B (%f)", scoreA, scoreB)
	}
}

func TestContentExcludesPurchased(t *testing.T) {
	snap := boostScenario()
	profile := snap.Profiles.ProfileFor(1)

	recs := scoreContent(snap, profile, DefaultConfig(), nil, testN, false)

	for _, r := range recs {
		if r.ProductID == 10 {
			t.Fatal("purchased product returned as candidate")
		}
	}
}

func TestContentExcludesOutOfStock(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Brand: "X", Availability: domain.AvailabilityInStock},
		{ID: 2, Brand: "X", Availability: domain.AvailabilityOutOfStock},
		{ID: 3, Brand: "X", Availability: domain.AvailabilityUnknown},
	}
	vectors := map[uint64][]float64{1: {1}, 2: {1}, 3: {1}}
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 1, EventType: domain.EventView},
	}

	snap := NewSnapshot(products, vectors, events)
	recs := scoreContent(snap, snap.Profiles.ProfileFor(1), DefaultConfig(), nil, testN, false)

	for _, r := range recs {
		if av := snap.Catalog[r.ProductID].Availability; av != domain.AvailabilityInStock {
			t.Fatalf("candidate %d has availability %s", r.ProductID, av)
		}
	}
}

func TestContentAgeGroupFilter(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Brand: "X", AgeGroup: "adult", Availability: domain.AvailabilityInStock},
		{ID: 2, Brand: "X", AgeGroup: "kids", Availability: domain.AvailabilityInStock},
		{ID: 3, Brand: "X", AgeGroup: "", Availability: domain.AvailabilityInStock},
		{ID: 10, Brand: "X", AgeGroup: "adult", Availability: domain.AvailabilityInStock},
	}
	vectors := map[uint64][]float64{1: {1}, 2: {1}, 3: {1}, 10: {1}}
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventView},
	}

	snap := NewSnapshot(products, vectors, events)
	recs := scoreContent(snap, snap.Profiles.ProfileFor(1), DefaultConfig(), nil, testN, false)

	for _, r := range recs {
		if r.ProductID == 2 {
			t.Fatal("candidate outside the user's age group returned")
		}
	}

	// missing age group never blocks
	found := false
	for _, r := range recs {
		if r.ProductID == 3 {
			found = true
		}
	}
	if !found {
		t.Error("candidate with no age group should survive the filter")
	}
}

func TestContentRelevanceThreshold(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Brand: "X", Availability: domain.AvailabilityInStock},
		{ID: 2, Brand: "X", Availability: domain.AvailabilityInStock},
		{ID: 10, Brand: "X", Availability: domain.AvailabilityInStock},
	}
	vectors := map[uint64][]float64{
		1:  {1, 0}, // aligned with profile
		2:  {0, 1}, // orthogonal: similarity 0
		10: {1, 0},
	}
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventView},
	}

	snap := NewSnapshot(products, vectors, events)
	recs := scoreContent(snap, snap.Profiles.ProfileFor(1), DefaultConfig(), nil, testN, false)

	for _, r := range recs {
		if r.ProductID == 2 {
			t.Fatal("near-zero-similarity candidate should be filtered, not down-ranked")
		}
	}
}

func TestContentCTRBoostFactor(t *testing.T) {
	snap := boostScenario()
	cfg := DefaultConfig()
	profile := snap.Profiles.ProfileFor(1)

	baseline := scoreContent(snap, profile, cfg, nil, testN, false)

	tracker := newFakeTracker()
	tracker.set(ctr.DimensionBrand, "X", 0.3)

	boosted := scoreContent(snap, profile, cfg, tracker, testN, false)

	baseByID := make(map[uint64]float64)
	for _, r := range baseline {
		baseByID[r.ProductID] = r.Score
	}

	// brand X, category CTR 0 → avg 0.15 → boost 1 + 2*0.15 = 1.3
	wantRatio := 1 + cfg.CTRBoostWeight*(0.3+0)/2

	for _, r := range boosted {
		if snap.Catalog[r.ProductID].Brand != "X" {
			continue
		}
		ratio := r.Score / baseByID[r.ProductID]
		if math.Abs(ratio-wantRatio) > 1e-9 {
			t.Errorf("product %d boost ratio = %f, want %f", r.ProductID, ratio, wantRatio)
		}
	}
}

func TestContentDiscountFactorMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	prev := 0.0
	for pct := 0.0; pct <= 100; pct += 5 {
		p := domain.Product{DiscountPercent: pct}
		factor := discountFactorFor(p, cfg, nil)
		if factor < prev {
			t.Fatalf("discount factor decreased at %f%%: %f < %f", pct, factor, prev)
		}
		if factor > cfg.DiscountCap {
			t.Fatalf("discount factor %f exceeds cap without CTR boost", factor)
		}
		prev = factor
	}
}

func TestContentDiscountCTRCeiling(t *testing.T) {
	cfg := DefaultConfig()
	tracker := newFakeTracker()
	tracker.set(ctr.DimensionDiscountTier, ctr.DiscountTier(90), 0.4)

	p := domain.Product{DiscountPercent: 90}
	factor := discountFactorFor(p, cfg, tracker)

	// the 1.3 multiplier stacks after the 2.0 cap
	want := cfg.DiscountCap * cfg.DiscountCTRBoost
	if math.Abs(factor-want) > 1e-9 {
		t.Fatalf("discount factor = %f, want %f", factor, want)
	}
}

func TestContentImpressionLogging(t *testing.T) {
	snap := boostScenario()
	profile := snap.Profiles.ProfileFor(1)
	tracker := newFakeTracker()

	recs := scoreContent(snap, profile, DefaultConfig(), tracker, 2, true)

	if len(tracker.impressions) != len(recs) {
		t.Fatalf("logged %d impressions for %d returned candidates",
			len(tracker.impressions), len(recs))
	}
	for i, r := range recs {
		if tracker.impressions[i] != r.ProductID {
			t.Errorf("impression %d logged for product %d, want %d",
				i, tracker.impressions[i], r.ProductID)
		}
	}

	// logging disabled: no impressions
	tracker2 := newFakeTracker()
	scoreContent(snap, profile, DefaultConfig(), tracker2, 2, false)
	if len(tracker2.impressions) != 0 {
		t.Errorf("impressions logged with logging disabled")
	}
}

func TestContentDeterministicOrdering(t *testing.T) {
	snap := boostScenario()
	profile := snap.Profiles.ProfileFor(1)
	cfg := DefaultConfig()

	first := scoreContent(snap, profile, cfg, nil, testN, false)
	second := scoreContent(snap, profile, cfg, nil, testN, false)

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ProductID != second[i].ProductID || first[i].Score != second[i].Score {
			t.Fatalf("position %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestContentTieBreakByDiscountThenID(t *testing.T) {
	// identical vectors, same brand/color exposure, no discounts on 2 and 3
	products := []domain.Product{
		{ID: 3, Brand: "X", Availability: domain.AvailabilityInStock},
		{ID: 2, Brand: "X", Availability: domain.AvailabilityInStock},
		{ID: 5, Brand: "X", DiscountPercent: 10, Availability: domain.AvailabilityInStock},
		{ID: 10, Brand: "X", Availability: domain.AvailabilityInStock},
	}
	vectors := map[uint64][]float64{2: {1}, 3: {1}, 5: {1}, 10: {1}}
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventPurchase},
	}

	snap := NewSnapshot(products, vectors, events)
	recs := scoreContent(snap, snap.Profiles.ProfileFor(1), DefaultConfig(), nil, testN, false)

	if len(recs) != 3 {
		t.Fatalf("got %d candidates, want 3", len(recs))
	}

	// 5 wins on score (discount factor), then 2 before 3 on ascending ID
	if recs[0].ProductID != 5 || recs[1].ProductID != 2 || recs[2].ProductID != 3 {
		t.Fatalf("order = [%d %d %d], want [5 2 3]",
			recs[0].ProductID, recs[1].ProductID, recs[2].ProductID)
	}
}
