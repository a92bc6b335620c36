package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// EntitlementLog records changes to a user's entitlement fields.
// Use case: troubleshooting.
type EntitlementLog struct {
	ID     string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID string `gorm:"column:user_id;type:varchar(64);index:idx_user_id_id,priority:1;not null"`
	// Reason is the change reason.
	Reason types.EntitlementChangeReason `gorm:"column:reason;type:varchar(64);not null"`
	// Before stores user entitlement data before the change in JSON format.
	Before datatypes.JSONType[*User] `gorm:"column:before;type:jsonb;default:'null'"`
	// After stores user entitlement data after the change in JSON format.
	After datatypes.JSONType[*User] `gorm:"column:after;type:jsonb;default:'null'"`
	// Extra stores additional context such as trigger source.
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'"`
	CreatedAt time.Time
}

func (EntitlementLog) TableName() string { return "entitlement_log" }
