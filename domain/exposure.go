package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ExposureImpression = "impression"
	ExposureClick      = "click"
)

// ExposureRow is one persisted impression or click, with the attribute
// snapshot that was counted into the CTR ledger at the time. Clicks are
// matched to impressions by (user_id, product_id) downstream, not by a
// foreign key; an unmatched click is still stored.
type ExposureRow struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	UserID     uint              `gorm:"column:user_id;not null" json:"user_id"`
	ProductID  uint64            `gorm:"column:product_id;not null" json:"product_id"`
	Kind       string            `gorm:"column:kind;not null" json:"kind"`
	Attributes datatypes.JSONMap `gorm:"column:attributes;type:jsonb" json:"attributes"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ExposureRow) TableName() string {
	return "exposure_log"
}
