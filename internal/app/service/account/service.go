package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/entitlement"
	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/logctx"
	"github.com/YoavDdev/studio-boaz-backend/pkg/tool"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	cfg *cfgpkg.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *cfgpkg.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

func (s *Service) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

// EnsureUser creates the local user row for an identity-provider subject on
// first contact. New users start on a 30-day trial.
func (s *Service) EnsureUser(ctx context.Context, userID, email, name string) (*models.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	now := time.Now()
	trial := types.SubscriptionTrial
	u = &models.User{
		ID:             userID,
		Email:          email,
		Name:           name,
		Role:           "user",
		SubscriptionID: &trial,
		TrialStartDate: &now,
	}
	if u.ID == "" {
		u.ID = tool.GenerateUUIDV7()
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("user registered on trial", "user_id", u.ID)
	return u, nil
}

// Snapshot converts a user row into the read-only view the resolver consumes.
func Snapshot(u *models.User) entitlement.Snapshot {
	return entitlement.Snapshot{
		UserID:                u.ID,
		SubscriptionID:        u.SubscriptionID,
		PayPalStatus:          u.PayPalStatus,
		TrialStartDate:        u.TrialStartDate,
		SubscriptionStartDate: u.SubscriptionStartDate,
		CancellationDate:      u.CancellationDate,
		CreatedAt:             u.CreatedAt,
	}
}

// CancelSubscription clears the plan and stamps the cancellation date, which
// starts the grace window. Grace eligibility itself is never persisted.
func (s *Service) CancelSubscription(ctx context.Context, userID string) (*models.User, error) {
	return s.updateEntitlement(ctx, userID, types.EntitlementChangeReasonCancel, func(u *models.User) {
		now := time.Now()
		u.SubscriptionID = nil
		u.CancellationDate = &now
	})
}

// OverridePlan sets the subscription id directly. Admin tooling only.
func (s *Service) OverridePlan(ctx context.Context, userID, subscriptionID, operatorID string) (*models.User, error) {
	u, err := s.updateEntitlement(ctx, userID, types.EntitlementChangeReasonAdminOverride, func(u *models.User) {
		now := time.Now()
		if subscriptionID == "" {
			u.SubscriptionID = nil
		} else {
			u.SubscriptionID = &subscriptionID
			u.SubscriptionStartDate = &now
		}
		u.CancellationDate = nil
	})
	if err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("plan overridden", "user_id", userID, "operator_id", operatorID, "subscription_id", subscriptionID)
	return u, nil
}

// updateEntitlement loads the user, applies mutate, saves, and writes an
// EntitlementLog row with before/after snapshots.
func (s *Service) updateEntitlement(ctx context.Context, userID string, reason types.EntitlementChangeReason, mutate func(*models.User)) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		before := u
		mutate(&u)
		if err := tx.Save(&u).Error; err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		s.writeEntitlementLog(ctx, &before, &u, reason)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// writeEntitlementLog records the change asynchronously; errors are logged
// but not returned.
func (s *Service) writeEntitlementLog(ctx context.Context, before, after *models.User, reason types.EntitlementChangeReason) {
	go func(b, a models.User) {
		log := &models.EntitlementLog{
			ID:     tool.GenerateUUIDV7(),
			UserID: a.ID,
			Reason: reason,
			Before: datatypes.NewJSONType(&b),
			After:  datatypes.NewJSONType(&a),
			Extra:  datatypes.JSONMap{},
		}
		if err := s.db.Save(log).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save entitlement log: %v", err)
		}
	}(*before, *after)
}
