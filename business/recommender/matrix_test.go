package recommender

import (
	"testing"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"
)

func TestMatrixAccumulatesEventWeights(t *testing.T) {
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventView},
		{UserID: 1, ProductID: 10, EventType: domain.EventATC},
		{UserID: 1, ProductID: 10, EventType: domain.EventPurchase},
		{UserID: 1, ProductID: 20, EventType: domain.EventView},
		{UserID: 2, ProductID: 10, EventType: domain.EventView},
	}

	m := BuildInteractionMatrix(events)

	// 1.0 + 3.0 + 5.0
	if got := m.ByUser[1][10]; got != 9.0 {
		t.Errorf("cell (1,10) = %f, want 9.0", got)
	}
	if got := m.ByUser[1][20]; got != 1.0 {
		t.Errorf("cell (1,20) = %f, want 1.0", got)
	}
	if got := m.ByUser[2][10]; got != 1.0 {
		t.Errorf("cell (2,10) = %f, want 1.0", got)
	}

	if m.EventCount[1] != 4 {
		t.Errorf("event count user 1 = %d, want 4", m.EventCount[1])
	}
	if m.Popularity[10] != 4 {
		t.Errorf("popularity product 10 = %d, want 4", m.Popularity[10])
	}
}

func TestMatrixSkipsMalformedEvents(t *testing.T) {
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventView},
		{UserID: 1, ProductID: 10, EventType: "wishlist"},
		{UserID: 3, ProductID: 30, EventType: ""},
	}

	m := BuildInteractionMatrix(events)

	if got := m.ByUser[1][10]; got != 1.0 {
		t.Errorf("cell (1,10) = %f, want 1.0 (malformed event must not count)", got)
	}
	if _, ok := m.ByUser[3]; ok {
		t.Error("user with only malformed events should have no row")
	}
}

func TestProfilePurchasedIsSubsetOfInteracted(t *testing.T) {
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventPurchase},
		{UserID: 1, ProductID: 20, EventType: domain.EventView},
	}

	catalog := map[uint64]domain.Product{
		10: {ID: 10, Brand: "acme", Color: "red"},
		20: {ID: 20, Brand: "zenit", Color: "blue"},
	}

	m := BuildInteractionMatrix(events)
	idx := BuildProfileIndex(m, catalog, NewVectorSpace(nil))

	p := idx.ProfileFor(1)
	if p.Kind != ProfileKnown {
		t.Fatal("expected known profile")
	}

	for productID := range p.Purchased {
		if _, ok := p.Products[productID]; !ok {
			t.Errorf("purchased product %d not in interacted set", productID)
		}
	}

	if _, ok := p.Brands["acme"]; !ok {
		t.Error("brand acme missing from seen brands")
	}
	if _, ok := p.Colors["blue"]; !ok {
		t.Error("color blue missing from seen colors")
	}
}

func TestProfileForUnknownUserIsCold(t *testing.T) {
	m := BuildInteractionMatrix(nil)
	idx := BuildProfileIndex(m, nil, NewVectorSpace(nil))

	p := idx.ProfileFor(99)
	if p.Kind != ProfileCold {
		t.Fatalf("expected cold profile for unknown user, got kind %d", p.Kind)
	}
}

func TestProfileMeanVector(t *testing.T) {
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventView},
		{UserID: 1, ProductID: 20, EventType: domain.EventView},
	}

	vectors := NewVectorSpace(map[uint64][]float64{
		10: {1, 0},
		20: {0, 1},
	})

	m := BuildInteractionMatrix(events)
	idx := BuildProfileIndex(m, nil, vectors)

	p := idx.ProfileFor(1)
	if len(p.Vector) != 2 || p.Vector[0] != 0.5 || p.Vector[1] != 0.5 {
		t.Fatalf("mean vector = %v, want [0.5 0.5]", p.Vector)
	}
}

func TestProfileMajorityAgeGroup(t *testing.T) {
	events := []domain.InteractionEvent{
		{UserID: 1, ProductID: 10, EventType: domain.EventView},
		{UserID: 1, ProductID: 20, EventType: domain.EventView},
		{UserID: 1, ProductID: 30, EventType: domain.EventView},
	}

	catalog := map[uint64]domain.Product{
		10: {ID: 10, AgeGroup: "adult"},
		20: {ID: 20, AgeGroup: "adult"},
		30: {ID: 30, AgeGroup: "kids"},
	}

	m := BuildInteractionMatrix(events)
	idx := BuildProfileIndex(m, catalog, NewVectorSpace(nil))

	if got := idx.ProfileFor(1).AgeGroup; got != "adult" {
		t.Fatalf("age group = %q, want adult", got)
	}
}
