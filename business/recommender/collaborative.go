package recommender

import (
	"math"
	"sort"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// scoreCollaborative builds a user-based collaborative ranking from the
// interaction matrix alone: cosine similarity between the target user's
// weight row and every other user's, then items liked by the top-K similar
// users aggregated by similarity-weighted score. Already-interacted items
// are excluded. Unknown users get an empty ranking; the cold-start fallback
// is the blender's job, not this scorer's.
func scoreCollaborative(snap *Snapshot, userID uint, cfg Config, n int) []domain.Recommendation {
	if snap == nil || snap.Matrix == nil {
		return []domain.Recommendation{}
	}

	target := snap.Matrix.Row(userID)
	if len(target) == 0 {
		return []domain.Recommendation{}
	}

	type neighbor struct {
		userID uint
		sim    float64
	}

	// deterministic iteration over users
	userIDs := make([]uint, 0, len(snap.Matrix.ByUser))
	for id := range snap.Matrix.ByUser {
		if id != userID {
			userIDs = append(userIDs, id)
		}
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	neighbors := make([]neighbor, 0, len(userIDs))
	for _, id := range userIDs {
		sim := sparseCosine(target, snap.Matrix.ByUser[id])
		if sim > 0 {
			neighbors = append(neighbors, neighbor{userID: id, sim: sim})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].sim != neighbors[j].sim {
			return neighbors[i].sim > neighbors[j].sim
		}
		return neighbors[i].userID < neighbors[j].userID
	})
	if cfg.TopKSimilarUsers > 0 && len(neighbors) > cfg.TopKSimilarUsers {
		neighbors = neighbors[:cfg.TopKSimilarUsers]
	}

	scores := make(map[uint64]float64)
	for _, nb := range neighbors {
		for productID, weight := range snap.Matrix.ByUser[nb.userID] {
			if _, seen := target[productID]; seen {
				continue
			}
			scores[productID] += nb.sim * weight
		}
	}

	ranked := make([]rankedCandidate, 0, len(scores))
	for productID, score := range scores {
		p, ok := snap.Catalog[productID]
		if !ok || p.Availability != domain.AvailabilityInStock {
			continue
		}

		ranked = append(ranked, rankedCandidate{
			discount: p.DiscountPercent,
			rec: domain.Recommendation{
				ProductID: productID,
				Score:     score,
				Source:    domain.SourceCollaborative,
				Breakdown: domain.ScoreBreakdown{
					Collaborative: score,
				},
			},
		})
	}

	sortRanked(ranked)
	return toRecommendations(ranked, n)
}

// sparseCosine is cosine similarity over two sparse weight rows.
func sparseCosine(a, b map[uint64]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dotSum := 0.0
	for productID, wa := range a {
		if wb, ok := b[productID]; ok {
			dotSum += wa * wb
		}
	}
	if dotSum == 0 {
		return 0
	}

	normA := 0.0
	for _, w := range a {
		normA += w * w
	}
	normB := 0.0
	for _, w := range b {
		normB += w * w
	}

	return dotSum / (math.Sqrt(normA) * math.Sqrt(normB))
}
