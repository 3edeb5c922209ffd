package recommender

import (
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// scoreColdStart ranks in-stock products by raw interaction-count popularity
// for users without history, promoted by the discount factor and a rarity
// boost for under-represented brands. The returned window carries at most
// MaxPerBrand products per brand; exhausted brands are skipped, not
// truncated into a short list.
func scoreColdStart(snap *Snapshot, cfg Config, tracker CTRTracker, n int) []domain.Recommendation {
	if snap == nil || len(snap.Products) == 0 {
		return []domain.Recommendation{}
	}

	ranked := make([]rankedCandidate, 0, len(snap.Products))

	for _, p := range snap.Products {
		if p.Availability != domain.AvailabilityInStock {
			continue
		}

		popularity := 0.0
		if snap.Matrix != nil {
			popularity = float64(snap.Matrix.Popularity[p.ID])
		}

		discountFactor := discountFactorFor(p, cfg, tracker)
		rarity := rarityBoost(snap.BrandCounts[p.Brand], cfg.RarityFloor)

		score := popularity * discountFactor * rarity

		ranked = append(ranked, rankedCandidate{
			discount: p.DiscountPercent,
			rec: domain.Recommendation{
				ProductID: p.ID,
				Score:     score,
				Source:    domain.SourceColdStart,
				Breakdown: domain.ScoreBreakdown{
					Popularity:     popularity,
					DiscountFactor: discountFactor,
					BrandFactor:    rarity,
				},
			},
		})
	}

	sortRanked(ranked)

	// brand diversity window: cap per brand, keep walking the tail
	out := make([]domain.Recommendation, 0, n)
	perBrand := make(map[string]int)
	for _, c := range ranked {
		if len(out) >= n {
			break
		}
		brand := snap.Catalog[c.rec.ProductID].Brand
		if perBrand[brand] >= cfg.MaxPerBrand {
			continue
		}
		perBrand[brand]++
		out = append(out, c.rec)
	}

	return out
}

// rarityBoost weights a brand inversely to its catalog frequency. The floor
// keeps one-off or junk brands from being boosted pathologically.
func rarityBoost(brandCount int, floor float64) float64 {
	freq := float64(brandCount)
	if freq < floor {
		freq = floor
	}
	return 1 + 1/freq
}
