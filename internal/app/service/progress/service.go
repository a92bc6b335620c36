package progress

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/tool"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type UpsertRequest struct {
	VideoURI        string  `json:"video_uri" binding:"required"`
	SeriesID        *string `json:"series_id"`
	ResumeSeconds   float64 `json:"resume_seconds"`
	DurationSeconds float64 `json:"duration_seconds"`
	Completed       bool    `json:"completed"`
}

// Upsert stores the resume position for (user, video), creating the row on
// first report.
func (s *Service) Upsert(ctx context.Context, userID string, req *UpsertRequest) (*models.WatchProgress, error) {
	var wp models.WatchProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND video_uri = ?", userID, req.VideoURI).
		First(&wp).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load watch progress: %w", err)
	}

	if wp.ID == "" {
		wp.ID = tool.GenerateUUIDV7()
		wp.UserID = userID
		wp.VideoURI = req.VideoURI
	}
	wp.SeriesID = req.SeriesID
	wp.ResumeSeconds = req.ResumeSeconds
	wp.DurationSeconds = req.DurationSeconds
	wp.Completed = req.Completed

	if err := s.db.WithContext(ctx).Save(&wp).Error; err != nil {
		return nil, fmt.Errorf("failed to save watch progress: %w", err)
	}
	return &wp, nil
}

func (s *Service) Get(ctx context.Context, userID, videoURI string) (*models.WatchProgress, error) {
	var wp models.WatchProgress
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND video_uri = ?", userID, videoURI).
		First(&wp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load watch progress: %w", err)
	}
	return &wp, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]*models.WatchProgress, error) {
	var rows []*models.WatchProgress
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list watch progress: %w", err)
	}
	return rows, nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
