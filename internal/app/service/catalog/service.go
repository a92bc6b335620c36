package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/entitlement"
	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/tool"
)

var ErrSeriesNotFound = errors.New("series not found")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) GetSeries(ctx context.Context, seriesID string) (*models.ContentSeries, error) {
	var series models.ContentSeries
	if err := s.db.WithContext(ctx).Where("id = ?", seriesID).First(&series).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, fmt.Errorf("failed to load series: %w", err)
	}
	return &series, nil
}

// Summary returns the resolver view of a series. A missing row maps to an
// inactive summary so the resolver produces a not-found denial rather than
// an error.
func (s *Service) Summary(ctx context.Context, seriesID string) (entitlement.SeriesSummary, error) {
	series, err := s.GetSeries(ctx, seriesID)
	if err != nil {
		if errors.Is(err, ErrSeriesNotFound) {
			return entitlement.SeriesSummary{ID: seriesID, IsActive: false}, nil
		}
		return entitlement.SeriesSummary{}, err
	}
	return entitlement.SeriesSummary{ID: series.ID, IsActive: series.IsActive, Price: series.Price}, nil
}

// ListVisible returns active, listable series for the public catalog,
// optionally narrowed to a category.
func (s *Service) ListVisible(ctx context.Context, category string) ([]*models.ContentSeries, error) {
	q := s.db.WithContext(ctx).Where("is_active = ? AND is_visible = ?", true, true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []*models.ContentSeries
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}
	return rows, nil
}

type UpsertSeriesRequest struct {
	ID            string `json:"id"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Level         string `json:"level"`
	Price         int64  `json:"price"`
	IsActive      *bool  `json:"is_active"`
	IsVisible     *bool  `json:"is_visible"`
	VimeoFolderID string `json:"vimeo_folder_id"`
}

// UpsertSeries creates or updates a series. Admin tooling only.
func (s *Service) UpsertSeries(ctx context.Context, req *UpsertSeriesRequest) (*models.ContentSeries, error) {
	var series models.ContentSeries
	if req.ID != "" {
		existing, err := s.GetSeries(ctx, req.ID)
		if err != nil && !errors.Is(err, ErrSeriesNotFound) {
			return nil, err
		}
		if existing != nil {
			series = *existing
		}
	}
	if series.ID == "" {
		series.ID = req.ID
		if series.ID == "" {
			series.ID = tool.GenerateUUIDV7()
		}
		series.IsActive = true
		series.IsVisible = true
	}

	series.Title = req.Title
	series.Description = req.Description
	series.Category = req.Category
	series.Level = req.Level
	series.Price = req.Price
	series.VimeoFolderID = req.VimeoFolderID
	if req.IsActive != nil {
		series.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		series.IsVisible = *req.IsVisible
	}

	if err := s.db.WithContext(ctx).Save(&series).Error; err != nil {
		return nil, fmt.Errorf("failed to save series: %w", err)
	}
	return &series, nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
