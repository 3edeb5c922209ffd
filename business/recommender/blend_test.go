package recommender

import (
	"math"
	"testing"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

func rec(id uint64, score float64) domain.Recommendation {
	return domain.Recommendation{ProductID: id, Score: score}
}

func TestBlendNormalizesScales(t *testing.T) {
	snap := NewSnapshot([]domain.Product{
		{ID: 1, Availability: domain.AvailabilityInStock},
		{ID: 2, Availability: domain.AvailabilityInStock},
	}, nil, nil)

	cfg := DefaultConfig()

	// wildly different raw scales; both lists rank product 1 first
	content := []domain.Recommendation{rec(1, 0.9), rec(2, 0.45)}
	collab := []domain.Recommendation{rec(1, 120), rec(2, 60)}

	out := blendRankings(snap, content, collab, cfg, 0, 5)

	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].ProductID != 1 {
		t.Errorf("top blended product = %d, want 1", out[0].ProductID)
	}

	// product 1 tops both normalized lists, so its blended score is the
	// full weight sum
	want := cfg.WContentSparse + cfg.WCollabSparse
	if math.Abs(out[0].Score-want) > 1e-9 {
		t.Errorf("top score = %f, want %f", out[0].Score, want)
	}
}

func TestBlendSingleListPresenceNotPenalized(t *testing.T) {
	snap := NewSnapshot([]domain.Product{
		{ID: 1, Availability: domain.AvailabilityInStock},
		{ID: 2, Availability: domain.AvailabilityInStock},
		{ID: 3, Availability: domain.AvailabilityInStock},
	}, nil, nil)

	cfg := DefaultConfig()

	content := []domain.Recommendation{rec(1, 1.0), rec(2, 0.8)}
	collab := []domain.Recommendation{rec(3, 5.0)}

	out := blendRankings(snap, content, collab, cfg, 0, 5)

	byID := make(map[uint64]float64)
	for _, r := range out {
		byID[r.ProductID] = r.Score
	}

	// product 3 exists only in the collaborative list: scored from that
	// list alone at full normalized value
	if math.Abs(byID[3]-cfg.WCollabSparse) > 1e-9 {
		t.Errorf("collab-only product score = %f, want %f", byID[3], cfg.WCollabSparse)
	}
	if math.Abs(byID[1]-cfg.WContentSparse) > 1e-9 {
		t.Errorf("content-only product score = %f, want %f", byID[1], cfg.WContentSparse)
	}
}

func TestBlendWeightsShiftWithHistory(t *testing.T) {
	snap := NewSnapshot([]domain.Product{
		{ID: 1, Availability: domain.AvailabilityInStock},
		{ID: 2, Availability: domain.AvailabilityInStock},
	}, nil, nil)

	cfg := DefaultConfig()

	content := []domain.Recommendation{rec(1, 1.0)}
	collab := []domain.Recommendation{rec(2, 1.0)}

	sparse := blendRankings(snap, content, collab, cfg, cfg.HistoryThreshold-1, 5)
	rich := blendRankings(snap, content, collab, cfg, cfg.HistoryThreshold, 5)

	if sparse[0].ProductID != 1 {
		t.Errorf("sparse history should favor content, top = %d", sparse[0].ProductID)
	}
	if rich[0].ProductID != 2 {
		t.Errorf("rich history should favor collaborative, top = %d", rich[0].ProductID)
	}
}

func TestBlendTruncatesAndOrdersDeterministically(t *testing.T) {
	snap := NewSnapshot([]domain.Product{
		{ID: 1, DiscountPercent: 10, Availability: domain.AvailabilityInStock},
		{ID: 2, DiscountPercent: 40, Availability: domain.AvailabilityInStock},
		{ID: 3, Availability: domain.AvailabilityInStock},
	}, nil, nil)

	cfg := DefaultConfig()

	// equal scores: discount desc, then ID asc
	content := []domain.Recommendation{rec(1, 1.0), rec(2, 1.0), rec(3, 1.0)}

	out := blendRankings(snap, content, nil, cfg, 0, 2)

	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].ProductID != 2 || out[1].ProductID != 1 {
		t.Fatalf("order = [%d %d], want [2 1]", out[0].ProductID, out[1].ProductID)
	}
}

func TestNormalizeScoresAllZero(t *testing.T) {
	normalized := normalizeScores([]domain.Recommendation{rec(1, 0), rec(2, 0)})
	for i, v := range normalized {
		if v != 0 {
			t.Fatalf("normalized[%d] = %f, want 0", i, v)
		}
	}
}
