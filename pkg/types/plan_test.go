package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		in   string
		want PlanKind
	}{
		{"", PlanNone},
		{"none", PlanNone},
		{"Admin", PlanAdmin},
		{"free", PlanFree},
		{"trial_30", PlanTrial},
		{"I-1K23BA8H", PlanPayPal},
		{"I-", PlanPayPal},
		{"yearly_legacy_2019", PlanLegacy},
		{"admin", PlanLegacy}, // tokens are case sensitive
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePlan(tt.in)
			assert.Equal(t, tt.want, got.Kind)
			if tt.want == PlanNone {
				assert.Empty(t, got.Raw)
			} else {
				assert.Equal(t, tt.in, got.Raw)
			}
		})
	}
}

func TestPurchaseStatusGrants(t *testing.T) {
	assert.True(t, PurchaseStatusCompleted.Grants())
	assert.False(t, PurchaseStatusPending.Grants())
	assert.False(t, PurchaseStatusFailed.Grants())
	assert.False(t, PurchaseStatusRefunded.Grants())
}
