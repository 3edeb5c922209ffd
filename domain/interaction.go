package domain

import (
	"fmt"
	"time"
)

const (
	EventView     = "view"
	EventATC      = "atc"
	EventPurchase = "purchase"
)

// InteractionEvent is one append-only row in the event log. The interaction
// matrix is rebuilt from all events out-of-band.
type InteractionEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"product_id"`
	EventType string    `gorm:"column:event_type;not null" json:"event_type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InteractionEvent) TableName() string {
	return "interaction_events"
}

// Weight maps an event type to its interaction weight. Unknown event types
// return an error so matrix builds can skip them without aborting.
func (e InteractionEvent) Weight() (float64, error) {
	switch e.EventType {
	case EventView:
		return 1.0, nil
	case EventATC:
		return 3.0, nil
	case EventPurchase:
		return 5.0, nil
	default:
		return 0, fmt.Errorf("unknown event type: %s", e.EventType)
	}
}
