package recommender

import (
	"time"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/logger"
)

// InteractionMatrix is the sparse user x product weight matrix, built once
// from the full event log and read-only afterwards. Every nonzero cell holds
// the sum of the event weights for that (user, product) pair.
type InteractionMatrix struct {
	ByUser map[uint]map[uint64]float64

	// EventCount counts recorded events per user; drives the blender's
	// rich-vs-sparse weighting.
	EventCount map[uint]int

	// Popularity counts raw interaction events per product; drives the
	// cold-start ranking.
	Popularity map[uint64]int

	// PurchasedBy tracks which products each user purchased.
	PurchasedBy map[uint]map[uint64]struct{}

	BuiltAt time.Time
}

// BuildInteractionMatrix folds the event log into a matrix in one pass.
// Events with an unknown type are skipped, never fatal.
func BuildInteractionMatrix(events []domain.InteractionEvent) *InteractionMatrix {
	m := &InteractionMatrix{
		ByUser:      make(map[uint]map[uint64]float64),
		EventCount:  make(map[uint]int),
		Popularity:  make(map[uint64]int),
		PurchasedBy: make(map[uint]map[uint64]struct{}),
		BuiltAt:     time.Now(),
	}

	skipped := 0
	for _, ev := range events {
		w, err := ev.Weight()
		if err != nil {
			skipped++
			continue
		}

		row, ok := m.ByUser[ev.UserID]
		if !ok {
			row = make(map[uint64]float64)
			m.ByUser[ev.UserID] = row
		}
		row[ev.ProductID] += w

		m.EventCount[ev.UserID]++
		m.Popularity[ev.ProductID]++

		if ev.EventType == domain.EventPurchase {
			purchased, ok := m.PurchasedBy[ev.UserID]
			if !ok {
				purchased = make(map[uint64]struct{})
				m.PurchasedBy[ev.UserID] = purchased
			}
			purchased[ev.ProductID] = struct{}{}
		}
	}

	if skipped > 0 {
		logger.Warn("interaction matrix build skipped malformed events", "skipped", skipped)
	}

	return m
}

// Row returns one user's accumulated weights; nil for unknown users.
func (m *InteractionMatrix) Row(userID uint) map[uint64]float64 {
	if m == nil {
		return nil
	}
	return m.ByUser[userID]
}
