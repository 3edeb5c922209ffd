package recommender

import (
	"sort"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

// ProfileKind makes the cold-start branch an explicit tag instead of a map
// presence check.
type ProfileKind int

const (
	ProfileCold ProfileKind = iota
	ProfileKnown
)

// Profile aggregates one user's preference signals out of the interaction
// matrix. A known profile exists iff the user has at least one recorded
// event; everything else is cold.
type Profile struct {
	Kind   ProfileKind
	UserID uint

	Products  map[uint64]struct{}
	Brands    map[string]struct{}
	Colors    map[string]struct{}
	Purchased map[uint64]struct{}

	// AgeGroup is the majority age group among interacted products, empty
	// when no interacted product carries one.
	AgeGroup string

	EventCount int

	// Vector is the mean content vector over interacted products.
	Vector []float64
}

// ProfileIndex holds the derived profiles of one snapshot.
type ProfileIndex struct {
	byUser map[uint]Profile
}

// BuildProfileIndex derives all profiles in one pass over the matrix.
// Recomputation is a full rebuild; the snapshot swap makes that safe.
func BuildProfileIndex(m *InteractionMatrix, catalog map[uint64]domain.Product, vectors *VectorSpace) *ProfileIndex {
	idx := &ProfileIndex{
		byUser: make(map[uint]Profile, len(m.ByUser)),
	}

	for userID, row := range m.ByUser {
		if len(row) == 0 {
			continue
		}

		p := Profile{
			Kind:       ProfileKnown,
			UserID:     userID,
			Products:   make(map[uint64]struct{}, len(row)),
			Brands:     make(map[string]struct{}),
			Colors:     make(map[string]struct{}),
			Purchased:  make(map[uint64]struct{}),
			EventCount: m.EventCount[userID],
		}

		ageVotes := make(map[string]int)
		interacted := make([][]float64, 0, len(row))

		for productID := range row {
			p.Products[productID] = struct{}{}

			if prod, ok := catalog[productID]; ok {
				if prod.Brand != "" {
					p.Brands[prod.Brand] = struct{}{}
				}
				if prod.Color != "" {
					p.Colors[prod.Color] = struct{}{}
				}
				if prod.AgeGroup != "" {
					ageVotes[prod.AgeGroup]++
				}
			}

			if v, ok := vectors.VectorFor(productID); ok {
				interacted = append(interacted, v)
			}
		}

		for productID := range m.PurchasedBy[userID] {
			p.Purchased[productID] = struct{}{}
		}

		p.AgeGroup = majorityAgeGroup(ageVotes)
		p.Vector = meanVector(interacted)

		idx.byUser[userID] = p
	}

	return idx
}

// ProfileFor returns the user's profile, or a cold profile when the user has
// no recorded history.
func (idx *ProfileIndex) ProfileFor(userID uint) Profile {
	if idx != nil {
		if p, ok := idx.byUser[userID]; ok {
			return p
		}
	}
	return Profile{Kind: ProfileCold, UserID: userID}
}

// Len reports the number of known profiles.
func (idx *ProfileIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byUser)
}

// majorityAgeGroup picks the most voted age group, breaking ties
// lexicographically for determinism.
func majorityAgeGroup(votes map[string]int) string {
	if len(votes) == 0 {
		return ""
	}

	groups := make([]string, 0, len(votes))
	for g := range votes {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	best := ""
	bestCount := 0
	for _, g := range groups {
		if votes[g] > bestCount {
			best = g
			bestCount = votes[g]
		}
	}
	return best
}
