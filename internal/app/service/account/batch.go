package account

import (
	"context"
	"fmt"
	"time"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// Batch-job accessors. Each mutation is independent so a failure on one user
// never blocks the rest of a sweep.

// ListActiveTrialUsers returns users still flagged trial_30 with a recorded
// trial start.
func (s *Service) ListActiveTrialUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := s.db.WithContext(ctx).
		Where("subscription_id = ? AND trial_start_date IS NOT NULL", types.SubscriptionTrial).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list trial users: %w", err)
	}
	return users, nil
}

// ClearExpiredTrial downgrades one expired trial user: subscription id
// becomes the empty string (not NULL, to distinguish "had a trial" from
// "never subscribed") and the trial start is cleared.
func (s *Service) ClearExpiredTrial(ctx context.Context, userID string) error {
	_, err := s.updateEntitlement(ctx, userID, types.EntitlementChangeReasonTrialExpired, func(u *models.User) {
		empty := ""
		u.SubscriptionID = &empty
		u.TrialStartDate = nil
	})
	return err
}

// ListPayPalUsers returns users whose plan is a PayPal subscription id.
func (s *Service) ListPayPalUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := s.db.WithContext(ctx).
		Where("subscription_id LIKE ?", types.PayPalSubscriptionPrefix+"%").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list paypal users: %w", err)
	}
	return users, nil
}

// UpdatePayPalStatus records the latest synced billing status.
func (s *Service) UpdatePayPalStatus(ctx context.Context, userID string, status types.PayPalStatus, syncedAt time.Time) error {
	_, err := s.updateEntitlement(ctx, userID, types.EntitlementChangeReasonPayPalSync, func(u *models.User) {
		st := string(status)
		u.PayPalStatus = &st
		u.PayPalLastSyncAt = &syncedAt
	})
	return err
}
