package entitlement

import (
	"time"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// Snapshot is the read-only entitlement view of one user. Callers load it
// from the user directory; the resolver never touches storage.
type Snapshot struct {
	UserID                string     `json:"user_id"`
	SubscriptionID        *string    `json:"subscription_id"`
	PayPalStatus          *string    `json:"paypal_status"`
	TrialStartDate        *time.Time `json:"trial_start_date"`
	SubscriptionStartDate *time.Time `json:"subscription_start_date"`
	CancellationDate      *time.Time `json:"cancellation_date"`
	CreatedAt             time.Time  `json:"created_at"`
}

func (s Snapshot) Plan() types.Plan {
	if s.SubscriptionID == nil {
		return types.Plan{Kind: types.PlanNone}
	}
	return types.ParsePlan(*s.SubscriptionID)
}

// SeriesSummary is what the resolver needs to know about a series.
type SeriesSummary struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
	Price    int64  `json:"price"`
}

// PurchaseRecord is one purchase-ledger row relevant to the decision.
type PurchaseRecord struct {
	UserID   string               `json:"user_id"`
	SeriesID string               `json:"series_id"`
	Status   types.PurchaseStatus `json:"status"`
}

// Decision serializes to exactly these three fields; the UI branches on the
// accessType string values verbatim.
type Decision struct {
	HasAccess  bool             `json:"hasAccess"`
	AccessType types.AccessType `json:"accessType"`
	Reason     *string          `json:"reason"`
}

const (
	ReasonSeriesNotFound       = "series not found or inactive"
	ReasonSubscriptionRequired = "subscription or purchase required"
)

func grant(t types.AccessType) Decision {
	return Decision{HasAccess: true, AccessType: t}
}

func deny(reason string) Decision {
	return Decision{HasAccess: false, AccessType: types.AccessTypeNone, Reason: &reason}
}

// ResolveAccess decides whether the user may view the series. It is a pure
// function over already-fetched data and produces no side effects.
//
// Rules are evaluated in a fixed business-priority order, first match wins:
//
//  1. inactive series denies everything
//  2. Admin plan
//  3. PayPal plan with last-synced status ACTIVE
//  4. free plan
//  5. trial plan (expiry is enforced by the sweep, not here)
//  6. any other non-empty plan token (legacy plans, see types.PlanLegacy)
//  7. a COMPLETED purchase of this series
//  8. deny
func ResolveAccess(user Snapshot, series SeriesSummary, purchases []PurchaseRecord) Decision {
	if !series.IsActive {
		return deny(ReasonSeriesNotFound)
	}

	switch plan := user.Plan(); plan.Kind {
	case types.PlanAdmin:
		return grant(types.AccessTypeAdmin)
	case types.PlanPayPal:
		if user.PayPalStatus != nil && types.PayPalStatus(*user.PayPalStatus) == types.PayPalStatusActive {
			return grant(types.AccessTypeSubscription)
		}
		// lapsed PayPal subscribers fall through to the purchase check
	case types.PlanFree, types.PlanTrial, types.PlanLegacy:
		return grant(types.AccessTypeSubscription)
	}

	for _, p := range purchases {
		if p.UserID == user.UserID && p.SeriesID == series.ID && p.Status.Grants() {
			return grant(types.AccessTypePurchased)
		}
	}

	return deny(ReasonSubscriptionRequired)
}
