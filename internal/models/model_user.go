package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// User stores account and entitlement state. Registration/login itself is
// handled by the external identity provider; this row is keyed by the
// provider's subject id.
type User struct {
	ID    string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Name  string `gorm:"column:name;type:varchar(128)" json:"name"`
	Role  string `gorm:"column:role;type:varchar(32);not null;default:user" json:"role"`
	// SubscriptionID is the sole source of truth for the plan type.
	// nil means the user never held a subscription; an empty string means a
	// previous trial or subscription was cleared.
	SubscriptionID *string `gorm:"column:subscription_id;type:varchar(128)" json:"subscription_id"`
	// PayPalStatus is the last-synced billing status, meaningful only for
	// "I-" subscription ids.
	PayPalStatus     *string    `gorm:"column:paypal_status;type:varchar(32)" json:"paypal_status"`
	PayPalLastSyncAt *time.Time `gorm:"column:paypal_last_sync_at;default:null" json:"paypal_last_sync_at"`
	// TrialStartDate is set when a trial begins and cleared by the expiry sweep.
	TrialStartDate        *time.Time `gorm:"column:trial_start_date;default:null" json:"trial_start_date"`
	SubscriptionStartDate *time.Time `gorm:"column:subscription_start_date;default:null" json:"subscription_start_date"`
	// CancellationDate starts the post-cancellation grace window.
	CancellationDate *time.Time        `gorm:"column:cancellation_date;default:null" json:"cancellation_date"`
	Extra            datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (User) TableName() string { return "user" }

// Plan parses the stored subscription id into its tagged form.
func (u *User) Plan() types.Plan {
	if u == nil || u.SubscriptionID == nil {
		return types.Plan{Kind: types.PlanNone}
	}
	return types.ParsePlan(*u.SubscriptionID)
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Plan().Kind == types.PlanAdmin
}
