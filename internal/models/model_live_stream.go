package models

import "time"

// LiveStream is an admin-scheduled live session shown to subscribers.
type LiveStream struct {
	ID          string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	StreamURL   string    `gorm:"column:stream_url;type:varchar(512);not null" json:"stream_url"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index" json:"scheduled_at"`
	CreatedBy   string    `gorm:"column:created_by;type:varchar(64);not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (LiveStream) TableName() string { return "live_stream" }
