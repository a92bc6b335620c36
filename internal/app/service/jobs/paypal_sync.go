package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/logctx"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

const (
	JobPayPalSync = "paypal_sync"

	// paypalCallsPerMinute caps billing-API calls across all instances;
	// the counter lives in the shared kv store.
	paypalCallsPerMinute = 60
)

type PayPalSyncResult struct {
	Processed int               `json:"processed"`
	Updated   int               `json:"updated"`
	Failed    int               `json:"failed"`
	Failures  map[string]string `json:"failures,omitempty"`
}

// RunPayPalSync refreshes the last-synced billing status for every user on an
// "I-" subscription id. Users are processed in small batches with a delay
// between batches and a per-item timeout, so one slow call cannot stall the
// run and the billing API is not hammered. A fetch failure records
// SYNC_ERROR on the user rather than leaving the old status in place.
func (s *Service) RunPayPalSync(ctx context.Context) (*PayPalSyncResult, error) {
	log := logctx.FromCtx(ctx, s.log)
	started := s.now()

	users, err := s.paypalUsers.ListPayPalUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := &PayPalSyncResult{Failures: map[string]string{}}
	for i, batch := range lo.Chunk(users, s.batchSize()) {
		if i > 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(s.batchDelay()):
			}
		}
		for _, u := range batch {
			res.Processed++
			s.syncOne(ctx, u, res)
		}
	}
	if len(res.Failures) == 0 {
		res.Failures = nil
	}

	s.recordStatus(ctx, Status{
		Job:        JobPayPalSync,
		StartedAt:  started,
		FinishedAt: s.now(),
		Processed:  res.Processed,
		Mutated:    res.Updated,
		Failed:     res.Failed,
	})
	log.Infow("paypal sync finished", "processed", res.Processed, "updated", res.Updated, "failed", res.Failed)
	return res, nil
}

func (s *Service) syncOne(ctx context.Context, u *models.User, res *PayPalSyncResult) {
	log := logctx.FromCtx(ctx, s.log)
	if u.SubscriptionID == nil {
		return
	}

	if err := s.checkRateLimit(ctx); err != nil {
		res.Failed++
		res.Failures[u.ID] = err.Error()
		return
	}

	itemCtx, cancel := context.WithTimeout(ctx, s.itemTimeout())
	status, err := s.billing.GetSubscriptionStatus(itemCtx, *u.SubscriptionID)
	cancel()
	if err != nil {
		status = types.PayPalStatusSyncError
		res.Failed++
		res.Failures[u.ID] = err.Error()
		log.Warnw("paypal sync: status fetch failed", "user_id", u.ID, "err", err)
	}

	if uerr := s.paypalUsers.UpdatePayPalStatus(ctx, u.ID, status, s.now()); uerr != nil {
		if err == nil {
			res.Failed++
		}
		res.Failures[u.ID] = uerr.Error()
		log.Errorw("paypal sync: failed to store status", "user_id", u.ID, "err", uerr)
		return
	}
	if err == nil {
		res.Updated++
	}
}

func (s *Service) checkRateLimit(ctx context.Context) error {
	key := fmt.Sprintf("ratelimit:paypal:%s", s.now().Format("200601021504"))
	n, err := s.kv.Incr(ctx, key, 2*time.Minute)
	if err != nil {
		// a broken counter should not block the sync
		s.log.Warnw("paypal sync: rate-limit counter unavailable", "err", err)
		return nil
	}
	if n > paypalCallsPerMinute {
		return fmt.Errorf("paypal rate limit reached (%d calls this minute)", n)
	}
	return nil
}
