package jobs

import (
	"context"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/entitlement"
	"github.com/YoavDdev/studio-boaz-backend/pkg/logctx"
)

const JobTrialSweep = "trial_sweep"

type TrialSweepResult struct {
	Processed      int               `json:"processed"`
	MutatedUserIDs []string          `json:"mutated_user_ids"`
	Failures       map[string]string `json:"failures,omitempty"`
}

// RunTrialSweep downgrades every trial_30 user whose trial has run out:
// subscription id is rewritten to "" and the trial start cleared. The sweep
// is idempotent; downgraded users no longer match the candidate query, so a
// second pass is a no-op.
func (s *Service) RunTrialSweep(ctx context.Context) (*TrialSweepResult, error) {
	log := logctx.FromCtx(ctx, s.log)
	started := s.now()

	users, err := s.trialUsers.ListActiveTrialUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := &TrialSweepResult{Failures: map[string]string{}}
	now := s.now()
	for _, u := range users {
		res.Processed++
		if u.TrialStartDate == nil {
			continue
		}
		if !entitlement.TrialExpired(*u.TrialStartDate, now) {
			continue
		}
		if err := s.trialUsers.ClearExpiredTrial(ctx, u.ID); err != nil {
			res.Failures[u.ID] = err.Error()
			log.Errorw("trial sweep: failed to downgrade user", "user_id", u.ID, "err", err)
			continue
		}
		res.MutatedUserIDs = append(res.MutatedUserIDs, u.ID)
	}
	if len(res.Failures) == 0 {
		res.Failures = nil
	}

	s.recordStatus(ctx, Status{
		Job:        JobTrialSweep,
		StartedAt:  started,
		FinishedAt: s.now(),
		Processed:  res.Processed,
		Mutated:    len(res.MutatedUserIDs),
		Failed:     len(res.Failures),
	})
	log.Infow("trial sweep finished",
		"processed", res.Processed,
		"downgraded", len(res.MutatedUserIDs),
		"failed", len(res.Failures),
	)
	return res, nil
}
