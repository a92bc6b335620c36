package stats

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// PlanCountItem is one row of the plan distribution.
type PlanCountItem struct {
	SubscriptionID string `json:"subscription_id"`
	Value          int64  `json:"value"`
}

type DailyCountItem struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

type RevenueItem struct {
	Date  string `json:"date"`
	Label string `json:"label,omitempty"`
	Value int64  `json:"value"`
}

type OverviewResponse struct {
	PlanDistribution []PlanCountItem  `json:"plan_distribution"`
	DailySignups     []DailyCountItem `json:"daily_signups"`
	DailyPurchases   []DailyCountItem `json:"daily_purchases"`
	DailyRevenue     []RevenueItem    `json:"daily_revenue"`
}

// Service provides admin statistics over users and purchases.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// PlanDistribution counts users grouped by their raw subscription id.
// NULL and empty ids collapse to "none" so the output matches plan tokens.
func (s *Service) PlanDistribution(ctx context.Context) ([]PlanCountItem, error) {
	var results []PlanCountItem
	q := s.db.WithContext(ctx).Table((models.User{}).TableName()).
		Select("COALESCE(NULLIF(subscription_id, ''), 'none') as subscription_id, count(*) as value").
		Group("COALESCE(NULLIF(subscription_id, ''), 'none')").
		Order("value DESC")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailySignups(ctx context.Context) ([]DailyCountItem, error) {
	var results []DailyCountItem
	q := s.db.WithContext(ctx).Table((models.User{}).TableName()).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, count(*) as value").
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date DESC")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyPurchases(ctx context.Context) ([]DailyCountItem, error) {
	var results []DailyCountItem
	q := s.db.WithContext(ctx).Table((models.Purchase{}).TableName()).
		Select("TO_CHAR(purchase_at, 'YYYY-MM-DD') as date, count(*) as value").
		Where("status = ?", types.PurchaseStatusCompleted).
		Group("TO_CHAR(purchase_at, 'YYYY-MM-DD')").
		Order("date DESC")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyRevenue(ctx context.Context) ([]RevenueItem, error) {
	var results []RevenueItem
	q := s.db.WithContext(ctx).Table((models.Purchase{}).TableName()).
		Select("TO_CHAR(purchase_at, 'YYYY-MM-DD') as date, currency as label, sum(amount) as value").
		Where("status = ?", types.PurchaseStatusCompleted).
		Group("TO_CHAR(purchase_at, 'YYYY-MM-DD')").
		Group("currency").
		Order("date DESC")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Overview aggregates the admin dashboard numbers in one call.
func (s *Service) Overview(ctx context.Context) (*OverviewResponse, error) {
	plans, err := s.PlanDistribution(ctx)
	if err != nil {
		return nil, err
	}
	signups, err := s.getDailySignups(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.getDailyPurchases(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.getDailyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &OverviewResponse{
		PlanDistribution: plans,
		DailySignups:     signups,
		DailyPurchases:   purchases,
		DailyRevenue:     revenue,
	}, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
