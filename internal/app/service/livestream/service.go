package livestream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/tool"
)

var ErrStreamNotFound = errors.New("live stream not found")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type ScheduleRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StreamURL   string    `json:"stream_url" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

func (s *Service) Schedule(ctx context.Context, createdBy string, req *ScheduleRequest) (*models.LiveStream, error) {
	ls := &models.LiveStream{
		ID:          tool.GenerateUUIDV7(),
		Title:       req.Title,
		Description: req.Description,
		StreamURL:   req.StreamURL,
		ScheduledAt: req.ScheduledAt,
		CreatedBy:   createdBy,
	}
	if err := s.db.WithContext(ctx).Create(ls).Error; err != nil {
		return nil, fmt.Errorf("failed to create live stream: %w", err)
	}
	return ls, nil
}

// ListUpcoming returns streams scheduled at or after now, soonest first.
func (s *Service) ListUpcoming(ctx context.Context, now time.Time) ([]*models.LiveStream, error) {
	var rows []*models.LiveStream
	if err := s.db.WithContext(ctx).
		Where("scheduled_at >= ?", now).
		Order("scheduled_at asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list live streams: %w", err)
	}
	return rows, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.LiveStream{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete live stream: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStreamNotFound
	}
	return nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
