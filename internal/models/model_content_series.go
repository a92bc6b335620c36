package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContentSeries is a purchasable bundle of videos. The videos themselves live
// on the external hosting provider; VimeoFolderID points at them.
type ContentSeries struct {
	ID          string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Category    string `gorm:"column:category;type:varchar(64);index" json:"category"`
	Level       string `gorm:"column:level;type:varchar(32)" json:"level"`
	// Price is in agorot.
	Price    int64 `gorm:"column:price;type:bigint;not null" json:"price"`
	IsActive bool  `gorm:"column:is_active;not null;default:true" json:"is_active"`
	// IsVisible controls folder listing only; access gating uses IsActive.
	IsVisible     bool              `gorm:"column:is_visible;not null;default:true" json:"is_visible"`
	VimeoFolderID string            `gorm:"column:vimeo_folder_id;type:varchar(64)" json:"vimeo_folder_id"`
	Extra         datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (ContentSeries) TableName() string { return "content_series" }
