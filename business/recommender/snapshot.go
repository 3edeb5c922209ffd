package recommender

import (
	"sort"
	"time"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// Snapshot bundles everything a scoring request reads: catalog, vector
// space, interaction matrix, and derived profiles. Immutable once built;
// the service swaps whole snapshots atomically so a rebuild never races a
// live request.
type Snapshot struct {
	Catalog map[uint64]domain.Product

	// Products is the catalog sorted by ID, the deterministic iteration
	// order for all scorers.
	Products []domain.Product

	Vectors  *VectorSpace
	Matrix   *InteractionMatrix
	Profiles *ProfileIndex

	// BrandCounts is the catalog-wide brand frequency, used by the
	// cold-start rarity boost.
	BrandCounts map[string]int

	BuiltAt time.Time
}

// NewSnapshot builds a snapshot from externally loaded inputs.
func NewSnapshot(products []domain.Product, vectors map[uint64][]float64, events []domain.InteractionEvent) *Snapshot {
	catalog := make(map[uint64]domain.Product, len(products))
	brandCounts := make(map[string]int)

	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for _, p := range sorted {
		catalog[p.ID] = p
		if p.Brand != "" {
			brandCounts[p.Brand]++
		}
	}

	vs := NewVectorSpace(vectors)
	matrix := BuildInteractionMatrix(events)
	profiles := BuildProfileIndex(matrix, catalog, vs)

	return &Snapshot{
		Catalog:     catalog,
		Products:    sorted,
		Vectors:     vs,
		Matrix:      matrix,
		Profiles:    profiles,
		BrandCounts: brandCounts,
		BuiltAt:     time.Now(),
	}
}
