package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

func TestInGracePeriod(t *testing.T) {
	d0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name      string
		subStart  *time.Time
		createdAt time.Time
		cancelled *time.Time
		now       time.Time
		want      bool
	}{
		{
			name:      "no cancellation date",
			subStart:  timePtr(d0),
			createdAt: d0,
			now:       d0.Add(10 * day),
			want:      false,
		},
		{
			name:      "qualifying and inside window",
			subStart:  timePtr(d0),
			createdAt: d0,
			cancelled: timePtr(d0.Add(10 * day)),
			now:       d0.Add(35 * day),
			want:      true,
		},
		{
			name:      "qualifying but window elapsed",
			subStart:  timePtr(d0),
			createdAt: d0,
			cancelled: timePtr(d0.Add(10 * day)),
			now:       d0.Add(41 * day),
			want:      false,
		},
		{
			name:      "under 4-day minimum never qualifies",
			subStart:  timePtr(d0),
			createdAt: d0,
			cancelled: timePtr(d0.Add(2 * day)),
			now:       d0.Add(3 * day),
			want:      false,
		},
		{
			name:      "exactly 4 days qualifies",
			subStart:  timePtr(d0),
			createdAt: d0,
			cancelled: timePtr(d0.Add(4 * day)),
			now:       d0.Add(20 * day),
			want:      true,
		},
		{
			name:      "falls back to created_at when start missing",
			createdAt: d0,
			cancelled: timePtr(d0.Add(10 * day)),
			now:       d0.Add(30 * day),
			want:      true,
		},
		{
			name:      "created_at fallback under minimum",
			createdAt: d0,
			cancelled: timePtr(d0.Add(1 * day)),
			now:       d0.Add(2 * day),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Snapshot{
				UserID:                "user-1",
				SubscriptionStartDate: tt.subStart,
				CancellationDate:      tt.cancelled,
				CreatedAt:             tt.createdAt,
			}
			assert.Equal(t, tt.want, InGracePeriod(u, tt.now))
		})
	}
}

func TestHasContentAccess(t *testing.T) {
	d0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	t.Run("active plan grants regardless of grace", func(t *testing.T) {
		u := snapshot(strPtr(types.SubscriptionFree), nil)
		assert.True(t, HasContentAccess(u, d0))
	})

	t.Run("lapsed paypal in grace grants coarse access", func(t *testing.T) {
		u := Snapshot{
			UserID:                "user-1",
			SubscriptionID:        strPtr("I-ABC123"),
			PayPalStatus:          strPtr(string(types.PayPalStatusCancelled)),
			SubscriptionStartDate: timePtr(d0),
			CancellationDate:      timePtr(d0.Add(10 * day)),
			CreatedAt:             d0,
		}
		assert.True(t, HasContentAccess(u, d0.Add(35*day)))
		assert.False(t, HasContentAccess(u, d0.Add(50*day)))
	})

	t.Run("no plan and no grace denies", func(t *testing.T) {
		u := snapshot(nil, nil)
		assert.False(t, HasContentAccess(u, d0))
	})
}

func TestTrialExpired(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, TrialExpired(start, start.Add(29*24*time.Hour)))
	assert.False(t, TrialExpired(start, start.Add(30*24*time.Hour)))
	assert.True(t, TrialExpired(start, start.Add(31*24*time.Hour)))
}
