package entitlement

import (
	"time"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

const (
	// TrialDuration is the fixed trial length.
	TrialDuration = 30 * 24 * time.Hour
	// GraceDuration is the courtesy window after cancelling a paid plan.
	GraceDuration = 30 * 24 * time.Hour
	// MinQualifyingDuration is how long a subscription must have run before
	// cancellation for any grace period to apply.
	MinQualifyingDuration = 4 * 24 * time.Hour
)

// InGracePeriod reports whether a cancelled user is still inside the
// post-cancellation courtesy window at now. Eligibility is computed from the
// stored dates on every call and never persisted.
func InGracePeriod(user Snapshot, now time.Time) bool {
	if user.CancellationDate == nil {
		return false
	}
	start := user.CreatedAt
	if user.SubscriptionStartDate != nil {
		start = *user.SubscriptionStartDate
	}
	if user.CancellationDate.Sub(start) < MinQualifyingDuration {
		return false
	}
	return !now.After(user.CancellationDate.Add(GraceDuration))
}

// HasContentAccess is the coarse dashboard gate: an active plan of any kind,
// or a lapsed user still in grace. It is intentionally looser than
// ResolveAccess and must not replace it for per-series checks.
func HasContentAccess(user Snapshot, now time.Time) bool {
	switch plan := user.Plan(); plan.Kind {
	case types.PlanAdmin, types.PlanFree, types.PlanTrial, types.PlanLegacy:
		return true
	case types.PlanPayPal:
		if user.PayPalStatus != nil && types.PayPalStatus(*user.PayPalStatus) == types.PayPalStatusActive {
			return true
		}
	}
	return InGracePeriod(user, now)
}

// TrialExpired reports whether a trial that started at trialStart has run out
// at now. Used by the expiry sweep; request-time checks stay flag-based.
func TrialExpired(trialStart, now time.Time) bool {
	return now.After(trialStart.Add(TrialDuration))
}
