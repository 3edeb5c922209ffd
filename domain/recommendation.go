package domain

// ScoreBreakdown carries the multiplicative factors behind one final score,
// for debugging and analytics responses.
type ScoreBreakdown struct {
	Similarity     float64 `json:"similarity"`
	CTRBoost       float64 `json:"ctr_boost"`
	BrandFactor    float64 `json:"brand_factor"`
	DiscountFactor float64 `json:"discount_factor"`
	ColorFactor    float64 `json:"color_factor"`
	Popularity     float64 `json:"popularity,omitempty"`
	Collaborative  float64 `json:"collaborative,omitempty"`
}

// Recommendation is one entry of a ranked result list. Ephemeral: produced
// per request, never persisted.
type Recommendation struct {
	ProductID uint64         `json:"product_id"`
	Score     float64        `json:"score"`
	Source    string         `json:"source"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

const (
	SourceContent       = "content"
	SourceCollaborative = "collaborative"
	SourceColdStart     = "cold_start"
	SourceHybrid        = "hybrid"
)
