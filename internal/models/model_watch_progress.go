package models

import "time"

// WatchProgress stores the resume position of one user in one video.
type WatchProgress struct {
	ID       string  `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID   string  `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:idx_user_video,priority:1" json:"user_id"`
	VideoURI string  `gorm:"column:video_uri;type:varchar(255);not null;uniqueIndex:idx_user_video,priority:2" json:"video_uri"`
	SeriesID *string `gorm:"column:series_id;type:uuid;index" json:"series_id"`
	// ResumeSeconds is the playback position to resume from.
	ResumeSeconds   float64   `gorm:"column:resume_seconds;not null;default:0" json:"resume_seconds"`
	DurationSeconds float64   `gorm:"column:duration_seconds;not null;default:0" json:"duration_seconds"`
	Completed       bool      `gorm:"column:completed;not null;default:false" json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (WatchProgress) TableName() string { return "watch_progress" }
