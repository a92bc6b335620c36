package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/catalog"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/entitlement"
	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/logctx"
	"github.com/YoavDdev/studio-boaz-backend/pkg/tool"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrSeriesInactive   = errors.New("series is not purchasable")
	ErrAlreadyOwned     = errors.New("series already purchased")
)

// Service is the purchase ledger: per-series orders and their transitions.
type Service struct {
	db      *gorm.DB
	log     *zap.SugaredLogger
	catalog *catalog.Service
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cat *catalog.Service) *Service {
	return &Service{db: db, log: log, catalog: cat}
}

// CreateOrder opens a PENDING purchase for (user, series), capturing the
// series price at order time. Payment capture itself happens at PayPal; the
// ledger is updated by CompleteOrder once the provider confirms.
func (s *Service) CreateOrder(ctx context.Context, userID, seriesID string) (*models.Purchase, error) {
	series, err := s.catalog.GetSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if !series.IsActive {
		return nil, ErrSeriesInactive
	}

	owned, err := s.HasCompleted(ctx, userID, seriesID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	p := &models.Purchase{
		ID:       tool.GenerateUUIDV7(),
		UserID:   userID,
		SeriesID: seriesID,
		Status:   types.PurchaseStatusPending,
		Amount:   series.Price,
		Currency: "ILS",
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("purchase created", "purchase_id", p.ID, "user_id", userID, "series_id", seriesID)
	return p, nil
}

// CompleteOrder marks a purchase COMPLETED with the provider order id.
func (s *Service) CompleteOrder(ctx context.Context, purchaseID, providerOrderID string) (*models.Purchase, error) {
	return s.transition(ctx, purchaseID, func(p *models.Purchase) error {
		if p.Status == types.PurchaseStatusCompleted {
			// provider webhooks retry; completing twice is a no-op
			return nil
		}
		now := time.Now()
		p.Status = types.PurchaseStatusCompleted
		p.PurchaseAt = &now
		if providerOrderID != "" {
			p.ProviderOrderID = &providerOrderID
		}
		return nil
	})
}

func (s *Service) FailOrder(ctx context.Context, purchaseID string) (*models.Purchase, error) {
	return s.transition(ctx, purchaseID, func(p *models.Purchase) error {
		p.Status = types.PurchaseStatusFailed
		return nil
	})
}

func (s *Service) RefundOrder(ctx context.Context, purchaseID string) (*models.Purchase, error) {
	return s.transition(ctx, purchaseID, func(p *models.Purchase) error {
		now := time.Now()
		p.Status = types.PurchaseStatusRefunded
		p.RefundAt = &now
		return nil
	})
}

func (s *Service) transition(ctx context.Context, purchaseID string, mutate func(*models.Purchase) error) (*models.Purchase, error) {
	var p models.Purchase
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", purchaseID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPurchaseNotFound
			}
			return fmt.Errorf("failed to load purchase: %w", err)
		}
		if err := mutate(&p); err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return fmt.Errorf("failed to save purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ListUserPurchases(ctx context.Context, userID string) ([]*models.Purchase, error) {
	var rows []*models.Purchase
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return rows, nil
}

// RecordsFor returns the resolver view of a user's ledger rows.
func (s *Service) RecordsFor(ctx context.Context, userID string) ([]entitlement.PurchaseRecord, error) {
	rows, err := s.ListUserPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(p *models.Purchase, _ int) entitlement.PurchaseRecord {
		return entitlement.PurchaseRecord{UserID: p.UserID, SeriesID: p.SeriesID, Status: p.Status}
	}), nil
}

func (s *Service) HasCompleted(ctx context.Context, userID, seriesID string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("user_id = ? AND series_id = ? AND status = ?", userID, seriesID, types.PurchaseStatusCompleted).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return count > 0, nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
