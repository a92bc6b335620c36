package entitlement

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func snapshot(subID *string, paypalStatus *string) Snapshot {
	return Snapshot{
		UserID:         "user-1",
		SubscriptionID: subID,
		PayPalStatus:   paypalStatus,
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func activeSeries(id string) SeriesSummary {
	return SeriesSummary{ID: id, IsActive: true, Price: 12000}
}

func TestResolveAccess_AllCases(t *testing.T) {
	completed := []PurchaseRecord{{UserID: "user-1", SeriesID: "series-x", Status: types.PurchaseStatusCompleted}}

	tests := []struct {
		name      string
		user      Snapshot
		series    SeriesSummary
		purchases []PurchaseRecord
		wantGrant bool
		wantType  types.AccessType
		wantWhy   string
	}{
		{
			name:     "inactive series denies admin",
			user:     snapshot(strPtr(types.SubscriptionAdmin), nil),
			series:   SeriesSummary{ID: "series-x", IsActive: false},
			wantType: types.AccessTypeNone,
			wantWhy:  ReasonSeriesNotFound,
		},
		{
			name:      "admin wins over completed purchase",
			user:      snapshot(strPtr(types.SubscriptionAdmin), nil),
			series:    activeSeries("series-x"),
			purchases: completed,
			wantGrant: true,
			wantType:  types.AccessTypeAdmin,
		},
		{
			name:      "active paypal subscription",
			user:      snapshot(strPtr("I-ABC123"), strPtr(string(types.PayPalStatusActive))),
			series:    activeSeries("series-x"),
			wantGrant: true,
			wantType:  types.AccessTypeSubscription,
		},
		{
			name:     "cancelled paypal without purchase",
			user:     snapshot(strPtr("I-ABC123"), strPtr(string(types.PayPalStatusCancelled))),
			series:   activeSeries("series-x"),
			wantType: types.AccessTypeNone,
			wantWhy:  ReasonSubscriptionRequired,
		},
		{
			name:      "cancelled paypal falls back to purchase",
			user:      snapshot(strPtr("I-ABC123"), strPtr(string(types.PayPalStatusCancelled))),
			series:    activeSeries("series-x"),
			purchases: completed,
			wantGrant: true,
			wantType:  types.AccessTypePurchased,
		},
		{
			name:     "paypal with unsynced status",
			user:     snapshot(strPtr("I-ABC123"), nil),
			series:   activeSeries("series-x"),
			wantType: types.AccessTypeNone,
			wantWhy:  ReasonSubscriptionRequired,
		},
		{
			name:      "free tier",
			user:      snapshot(strPtr(types.SubscriptionFree), nil),
			series:    activeSeries("series-x"),
			wantGrant: true,
			wantType:  types.AccessTypeSubscription,
		},
		{
			name:      "trial flag grants without expiry check",
			user:      snapshot(strPtr(types.SubscriptionTrial), nil),
			series:    activeSeries("series-x"),
			wantGrant: true,
			wantType:  types.AccessTypeSubscription,
		},
		{
			name:      "legacy token grants subscription access",
			user:      snapshot(strPtr("yearly_legacy_2019"), nil),
			series:    activeSeries("series-x"),
			wantGrant: true,
			wantType:  types.AccessTypeSubscription,
		},
		{
			name:     "literal none token denies",
			user:     snapshot(strPtr("none"), nil),
			series:   activeSeries("series-x"),
			wantType: types.AccessTypeNone,
			wantWhy:  ReasonSubscriptionRequired,
		},
		{
			name:      "completed purchase only",
			user:      snapshot(nil, nil),
			series:    activeSeries("series-x"),
			purchases: completed,
			wantGrant: true,
			wantType:  types.AccessTypePurchased,
		},
		{
			name:      "completed purchase of another series does not carry over",
			user:      snapshot(nil, nil),
			series:    activeSeries("series-y"),
			purchases: completed,
			wantType:  types.AccessTypeNone,
			wantWhy:   ReasonSubscriptionRequired,
		},
		{
			name:      "pending purchase does not grant",
			user:      snapshot(nil, nil),
			series:    activeSeries("series-x"),
			purchases: []PurchaseRecord{{UserID: "user-1", SeriesID: "series-x", Status: types.PurchaseStatusPending}},
			wantType:  types.AccessTypeNone,
			wantWhy:   ReasonSubscriptionRequired,
		},
		{
			name:      "refunded purchase does not grant",
			user:      snapshot(nil, nil),
			series:    activeSeries("series-x"),
			purchases: []PurchaseRecord{{UserID: "user-1", SeriesID: "series-x", Status: types.PurchaseStatusRefunded}},
			wantType:  types.AccessTypeNone,
			wantWhy:   ReasonSubscriptionRequired,
		},
		{
			name:     "empty subscription id denies",
			user:     snapshot(strPtr(""), nil),
			series:   activeSeries("series-x"),
			wantType: types.AccessTypeNone,
			wantWhy:  ReasonSubscriptionRequired,
		},
		{
			name:     "nil subscription id denies",
			user:     snapshot(nil, nil),
			series:   activeSeries("series-x"),
			wantType: types.AccessTypeNone,
			wantWhy:  ReasonSubscriptionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAccess(tt.user, tt.series, tt.purchases)
			assert.Equal(t, tt.wantGrant, got.HasAccess)
			assert.Equal(t, tt.wantType, got.AccessType)
			if tt.wantWhy == "" {
				assert.Nil(t, got.Reason)
			} else {
				require.NotNil(t, got.Reason)
				assert.Equal(t, tt.wantWhy, *got.Reason)
			}
		})
	}
}

func TestResolveAccess_InactiveSeriesDeniesAnyUserState(t *testing.T) {
	users := []Snapshot{
		snapshot(strPtr(types.SubscriptionAdmin), nil),
		snapshot(strPtr(types.SubscriptionFree), nil),
		snapshot(strPtr(types.SubscriptionTrial), nil),
		snapshot(strPtr("I-ABC123"), strPtr(string(types.PayPalStatusActive))),
		snapshot(nil, nil),
	}
	series := SeriesSummary{ID: "series-x", IsActive: false}
	purchases := []PurchaseRecord{{UserID: "user-1", SeriesID: "series-x", Status: types.PurchaseStatusCompleted}}
	for _, u := range users {
		got := ResolveAccess(u, series, purchases)
		require.False(t, got.HasAccess)
		require.NotNil(t, got.Reason)
		require.Equal(t, ReasonSeriesNotFound, *got.Reason)
	}
}

// The decision must serialize to exactly hasAccess/accessType/reason since
// the frontend branches on those keys verbatim.
func TestDecision_WireFormat(t *testing.T) {
	b, err := json.Marshal(grant(types.AccessTypeAdmin))
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasAccess":true,"accessType":"admin","reason":null}`, string(b))

	b, err = json.Marshal(deny(ReasonSubscriptionRequired))
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasAccess":false,"accessType":"none","reason":"subscription or purchase required"}`, string(b))
}
