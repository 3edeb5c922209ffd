package recommender

import (
	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// scoreContent ranks the catalog for a known user: cosine similarity against
// the user's mean content vector, multiplied by the CTR, brand, discount and
// color boost factors. Candidates the user purchased, products not in stock,
// and products outside the user's age group are excluded up front; base
// similarity below the relevance threshold filters the candidate out rather
// than down-ranking it.
func scoreContent(
	snap *Snapshot,
	profile Profile,
	cfg Config,
	tracker CTRTracker,
	n int,
	logImpressions bool,
) []domain.Recommendation {

	if snap == nil || len(snap.Products) == 0 || profile.Kind != ProfileKnown {
		return []domain.Recommendation{}
	}

	ranked := make([]rankedCandidate, 0, len(snap.Products))

	for _, p := range snap.Products {
		if p.Availability != domain.AvailabilityInStock {
			continue
		}
		if _, purchased := profile.Purchased[p.ID]; purchased {
			continue
		}
		if profile.AgeGroup != "" && p.AgeGroup != "" && p.AgeGroup != profile.AgeGroup {
			continue
		}

		vec, ok := snap.Vectors.VectorFor(p.ID)
		if !ok {
			continue
		}

		similarity := cosine(profile.Vector, vec)
		if similarity < cfg.RelevanceThreshold {
			continue
		}

		ctrBoost := ctrBoostFor(p, cfg, tracker)
		brandFactor := brandFactorFor(p, profile, cfg, ctrBoost)
		discountFactor := discountFactorFor(p, cfg, tracker)
		colorFactor := colorFactorFor(p, profile, cfg, tracker)

		final := similarity * brandFactor * discountFactor * colorFactor

		ranked = append(ranked, rankedCandidate{
			discount: p.DiscountPercent,
			rec: domain.Recommendation{
				ProductID: p.ID,
				Score:     final,
				Source:    domain.SourceContent,
				Breakdown: domain.ScoreBreakdown{
					Similarity:     similarity,
					CTRBoost:       ctrBoost,
					BrandFactor:    brandFactor,
					DiscountFactor: discountFactor,
					ColorFactor:    colorFactor,
				},
			},
		})
	}

	sortRanked(ranked)
	out := toRecommendations(ranked, n)

	if tracker != nil && logImpressions {
		for _, rec := range out {
			if p, ok := snap.Catalog[rec.ProductID]; ok {
				tracker.RecordImpression(profile.UserID, p.ID, ctr.AttributesOf(p))
			}
		}
	}

	return out
}

// ctrBoostFor averages the live CTR of the candidate's brand and category:
// 1 + weight*avgCTR, neutral without a tracker.
func ctrBoostFor(p domain.Product, cfg Config, tracker CTRTracker) float64 {
	if tracker == nil {
		return 1.0
	}
	avg := (tracker.CTR(ctr.DimensionBrand, p.Brand) + tracker.CTR(ctr.DimensionCategory, p.Category)) / 2
	return 1 + cfg.CTRBoostWeight*avg
}

// brandFactorFor rewards brand familiarity, and rewards discovering a new
// brand slightly harder. The CTR boost rides on top of either. A candidate
// with no brand at all degrades to neutral.
func brandFactorFor(p domain.Product, profile Profile, cfg Config, ctrBoost float64) float64 {
	if p.Brand == "" {
		return 1.0
	}
	if _, seen := profile.Brands[p.Brand]; seen {
		return cfg.BrandBoost * ctrBoost
	}
	return cfg.BrandBoost * cfg.NewBrandBoost * ctrBoost
}

// discountFactorFor caps the raw discount boost, then applies the tier-CTR
// multiplier after the cap. The effective ceiling is cap * boost; that
// stacking order is deliberate.
func discountFactorFor(p domain.Product, cfg Config, tracker CTRTracker) float64 {
	if p.DiscountPercent <= 0 {
		return 1.0
	}

	factor := 1 + p.DiscountPercent/100
	if factor > cfg.DiscountCap {
		factor = cfg.DiscountCap
	}

	if tracker != nil {
		tier := ctr.DiscountTier(p.DiscountPercent)
		if tracker.CTR(ctr.DimensionDiscountTier, tier) > cfg.DiscountCTRThreshold {
			factor *= cfg.DiscountCTRBoost
		}
	}

	return factor
}

// colorFactorFor boosts candidates matching a color the user has seen.
// A missing color degrades to neutral, never blocks the candidate.
func colorFactorFor(p domain.Product, profile Profile, cfg Config, tracker CTRTracker) float64 {
	if p.Color == "" {
		return 1.0
	}
	if _, seen := profile.Colors[p.Color]; !seen {
		return 1.0
	}

	factor := cfg.ColorBoost
	if tracker != nil && tracker.CTR(ctr.DimensionColor, p.Color) > cfg.ColorCTRThreshold {
		factor *= cfg.ColorCTRBoost
	}

	return factor
}
