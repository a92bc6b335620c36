package types

import "strings"

// Subscription id tokens stored on the user record. The column is the sole
// source of truth for the plan type; PayPalStatus only narrows PayPal users.
const (
	SubscriptionAdmin = "Admin"
	SubscriptionFree  = "free"
	SubscriptionTrial = "trial_30"

	// PayPalSubscriptionPrefix marks ids issued by PayPal billing.
	PayPalSubscriptionPrefix = "I-"
)

type PlanKind string

const (
	PlanNone   PlanKind = "none"
	PlanAdmin  PlanKind = "admin"
	PlanFree   PlanKind = "free"
	PlanTrial  PlanKind = "trial"
	PlanPayPal PlanKind = "paypal"
	// PlanLegacy covers any other non-empty token. Granting these users
	// subscription-level access is intentional: older custom plans were
	// never migrated to enumerable ids.
	PlanLegacy PlanKind = "legacy"
)

// Plan is the parsed form of a stored subscription id.
type Plan struct {
	Kind PlanKind
	// Raw is the token the plan was parsed from, empty for PlanNone.
	Raw string
}

// ParsePlan classifies a stored subscription id. A literal "none" token is
// treated the same as an empty column.
func ParsePlan(subscriptionID string) Plan {
	switch subscriptionID {
	case "", "none":
		return Plan{Kind: PlanNone}
	case SubscriptionAdmin:
		return Plan{Kind: PlanAdmin, Raw: subscriptionID}
	case SubscriptionFree:
		return Plan{Kind: PlanFree, Raw: subscriptionID}
	case SubscriptionTrial:
		return Plan{Kind: PlanTrial, Raw: subscriptionID}
	}
	if strings.HasPrefix(subscriptionID, PayPalSubscriptionPrefix) {
		return Plan{Kind: PlanPayPal, Raw: subscriptionID}
	}
	return Plan{Kind: PlanLegacy, Raw: subscriptionID}
}

// PayPalStatus is the last-synced PayPal subscription status. Meaningful only
// for PlanPayPal users.
type PayPalStatus string

const (
	PayPalStatusActive    PayPalStatus = "ACTIVE"
	PayPalStatusCancelled PayPalStatus = "CANCELLED"
	PayPalStatusExpired   PayPalStatus = "EXPIRED"
	PayPalStatusSuspended PayPalStatus = "SUSPENDED"
	PayPalStatusSyncError PayPalStatus = "SYNC_ERROR"
)

// AccessType classifies why access was granted. The UI branches on these
// string values verbatim.
type AccessType string

const (
	AccessTypeAdmin        AccessType = "admin"
	AccessTypeSubscription AccessType = "subscription"
	AccessTypePurchased    AccessType = "purchased"
	AccessTypeNone         AccessType = "none"
)

type EntitlementChangeReason string

const (
	EntitlementChangeReasonCancel        EntitlementChangeReason = "cancel"
	EntitlementChangeReasonTrialExpired  EntitlementChangeReason = "trialExpired"
	EntitlementChangeReasonPayPalSync    EntitlementChangeReason = "paypalSync"
	EntitlementChangeReasonAdminOverride EntitlementChangeReason = "adminOverride"
)
