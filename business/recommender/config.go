package recommender

// Config carries every scoring constant so tests and the serving layer can
// tune them without touching scorer code.
type Config struct {
	// serving
	TopN       int
	CTRLogging bool

	// content scorer
	RelevanceThreshold   float64
	BrandBoost           float64
	NewBrandBoost        float64
	CTRBoostWeight       float64
	DiscountCap          float64
	DiscountCTRThreshold float64
	DiscountCTRBoost     float64
	ColorBoost           float64
	ColorCTRThreshold    float64
	ColorCTRBoost        float64

	// cold-start ranker
	MaxPerBrand int
	RarityFloor float64

	// collaborative scorer
	TopKSimilarUsers int

	// hybrid blender
	HistoryThreshold int
	WContentSparse   float64
	WCollabSparse    float64
	WContentRich     float64
	WCollabRich      float64
}

const (
	defaultTopN                 = 10
	defaultRelevanceThreshold   = 0.01
	defaultBrandBoost           = 1.5
	defaultNewBrandBoost        = 1.2
	defaultCTRBoostWeight       = 2.0
	defaultDiscountCap          = 2.0
	defaultDiscountCTRThreshold = 0.25
	defaultDiscountCTRBoost     = 1.3
	defaultColorBoost           = 1.3
	defaultColorCTRThreshold    = 0.2
	defaultColorCTRBoost        = 1.2
	defaultMaxPerBrand          = 2
	defaultRarityFloor          = 2.0
	defaultTopKSimilarUsers     = 20
	defaultHistoryThreshold     = 10
	defaultWContentSparse       = 0.7
	defaultWCollabSparse        = 0.3
	defaultWContentRich         = 0.4
	defaultWCollabRich          = 0.6
)

func DefaultConfig() Config {
	return Config{
		TopN:       defaultTopN,
		CTRLogging: true,

		RelevanceThreshold:   defaultRelevanceThreshold,
		BrandBoost:           defaultBrandBoost,
		NewBrandBoost:        defaultNewBrandBoost,
		CTRBoostWeight:       defaultCTRBoostWeight,
		DiscountCap:          defaultDiscountCap,
		DiscountCTRThreshold: defaultDiscountCTRThreshold,
		DiscountCTRBoost:     defaultDiscountCTRBoost,
		ColorBoost:           defaultColorBoost,
		ColorCTRThreshold:    defaultColorCTRThreshold,
		ColorCTRBoost:        defaultColorCTRBoost,

		MaxPerBrand: defaultMaxPerBrand,
		RarityFloor: defaultRarityFloor,

		TopKSimilarUsers: defaultTopKSimilarUsers,

		HistoryThreshold: defaultHistoryThreshold,
		WContentSparse:   defaultWContentSparse,
		WCollabSparse:    defaultWCollabSparse,
		WContentRich:     defaultWContentRich,
		WCollabRich:      defaultWCollabRich,
	}
}
