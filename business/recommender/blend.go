package recommender

import (
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// blendRankings merges the content and collaborative rankings into one list.
// The two score scales differ by construction, so each list is normalized by
// its own maximum before the weighted sum. A product present in only one
// list is scored from that list alone, never penalized for absence from the
// other. Weights depend on how much history the user has: sparse history
// trusts content, rich history trusts the collaborative signal.
func blendRankings(
	snap *Snapshot,
	content, collab []domain.Recommendation,
	cfg Config,
	eventCount int,
	n int,
) []domain.Recommendation {

	wContent := cfg.WContentSparse
	wCollab := cfg.WCollabSparse
	if eventCount >= cfg.HistoryThreshold {
		wContent = cfg.WContentRich
		wCollab = cfg.WCollabRich
	}

	contentNorm := normalizeScores(content)
	collabNorm := normalizeScores(collab)

	type blended struct {
		score     float64
		breakdown domain.ScoreBreakdown
	}
	merged := make(map[uint64]*blended, len(content)+len(collab))

	for i, rec := range content {
		merged[rec.ProductID] = &blended{
			score:     wContent * contentNorm[i],
			breakdown: rec.Breakdown,
		}
	}

	for i, rec := range collab {
		entry, ok := merged[rec.ProductID]
		if !ok {
			entry = &blended{}
			merged[rec.ProductID] = entry
		}
		entry.score += wCollab * collabNorm[i]
		entry.breakdown.Collaborative = collabNorm[i]
	}

	ranked := make([]rankedCandidate, 0, len(merged))
	for productID, entry := range merged {
		ranked = append(ranked, rankedCandidate{
			discount: snap.Catalog[productID].DiscountPercent,
			rec: domain.Recommendation{
				ProductID: productID,
				Score:     entry.score,
				Source:    domain.SourceHybrid,
				Breakdown: entry.breakdown,
			},
		})
	}

	sortRanked(ranked)
	return toRecommendations(ranked, n)
}

// normalizeScores divides each score by the list's maximum, mapping every
// list onto [0,1]. An all-zero list stays all-zero.
func normalizeScores(list []domain.Recommendation) []float64 {
	maxScore := 0.0
	for _, rec := range list {
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
	}

	out := make([]float64, len(list))
	if maxScore == 0 {
		return out
	}
	for i, rec := range list {
		out[i] = rec.Score / maxScore
	}
	return out
}
