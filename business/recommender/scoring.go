package recommender

import (
	"sort"

	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// CTRTracker is the live-CTR feedback surface the scorers consume. A nil
// tracker disables both boosts and impression logging; scoring still works.
type CTRTracker interface {
	CTR(dim ctr.Dimension, value string) float64
	RecordImpression(userID uint, productID uint64, attrs ctr.AttributeSet)
}

type rankedCandidate struct {
	rec      domain.Recommendation
	discount float64
}

// sortRanked orders candidates by final score descending, then discount
// percent descending, then product ID ascending. Every ranked list in the
// recommender uses this one rule so identical inputs always produce
// identical output.
func sortRanked(list []rankedCandidate) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].rec.Score != list[j].rec.Score {
			return list[i].rec.Score > list[j].rec.Score
		}
		if list[i].discount != list[j].discount {
			return list[i].discount > list[j].discount
		}
		return list[i].rec.ProductID < list[j].rec.ProductID
	})
}

func toRecommendations(list []rankedCandidate, n int) []domain.Recommendation {
	if n > len(list) {
		n = len(list)
	}
	out := make([]domain.Recommendation, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list[i].rec)
	}
	return out
}
