package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// Purchase is one row of the purchase ledger: a per-series order placed by a
// user. Only COMPLETED rows count toward access.
type Purchase struct {
	ID       string               `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID   string               `gorm:"column:user_id;type:varchar(64);not null;index:idx_user_series,priority:1" json:"user_id"`
	SeriesID string               `gorm:"column:series_id;type:uuid;not null;index:idx_user_series,priority:2" json:"series_id"`
	Status   types.PurchaseStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	// Amount is in agorot, captured from the series price at order time.
	Amount   int64  `gorm:"column:amount;type:bigint;not null" json:"amount"`
	Currency string `gorm:"column:currency;type:varchar(8);not null;default:ILS" json:"currency"`
	// ProviderOrderID is the PayPal order id, set once capture succeeds.
	ProviderOrderID *string           `gorm:"column:provider_order_id;type:varchar(64);uniqueIndex" json:"provider_order_id"`
	PurchaseAt      *time.Time        `gorm:"column:purchase_at;default:null" json:"purchase_at"`
	RefundAt        *time.Time        `gorm:"column:refund_at;default:null" json:"refund_at"`
	Extra           datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Purchase) TableName() string { return "purchase" }
