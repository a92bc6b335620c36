package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/internal/platform/kvstore"
	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

type fakePayPalStore struct {
	users    []*models.User
	statuses map[string]types.PayPalStatus
	syncedAt map[string]time.Time
	failIDs  map[string]bool
}

func (f *fakePayPalStore) ListPayPalUsers(context.Context) ([]*models.User, error) {
	return f.users, nil
}

func (f *fakePayPalStore) UpdatePayPalStatus(_ context.Context, userID string, status types.PayPalStatus, syncedAt time.Time) error {
	if f.failIDs[userID] {
		return fmt.Errorf("db write failed for %s", userID)
	}
	if f.statuses == nil {
		f.statuses = map[string]types.PayPalStatus{}
		f.syncedAt = map[string]time.Time{}
	}
	f.statuses[userID] = status
	f.syncedAt[userID] = syncedAt
	return nil
}

type fakeBilling struct {
	statuses map[string]types.PayPalStatus
	errIDs   map[string]bool
	calls    int
}

func (f *fakeBilling) GetSubscriptionStatus(_ context.Context, subscriptionID string) (types.PayPalStatus, error) {
	f.calls++
	if f.errIDs[subscriptionID] {
		return "", fmt.Errorf("paypal 500 for %s", subscriptionID)
	}
	return f.statuses[subscriptionID], nil
}

func paypalUser(id, subID string) *models.User {
	return &models.User{ID: id, SubscriptionID: &subID}
}

func newSyncService(store *fakePayPalStore, billing *fakeBilling, now time.Time) *Service {
	return &Service{
		cfg: &cfgpkg.Config{Jobs: cfgpkg.JobsConfig{
			BatchSize:   2,
			BatchDelay:  time.Millisecond,
			ItemTimeout: time.Second,
		}},
		log:         zap.NewNop().Sugar(),
		kv:          kvstore.NewMemoryStore(),
		paypalUsers: store,
		billing:     billing,
		now:         func() time.Time { return now },
	}
}

func TestRunPayPalSync_UpdatesStatuses(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakePayPalStore{users: []*models.User{
		paypalUser("u1", "I-AAA"),
		paypalUser("u2", "I-BBB"),
		paypalUser("u3", "I-CCC"),
	}}
	billing := &fakeBilling{statuses: map[string]types.PayPalStatus{
		"I-AAA": types.PayPalStatusActive,
		"I-BBB": types.PayPalStatusCancelled,
		"I-CCC": types.PayPalStatusExpired,
	}}
	svc := newSyncService(store, billing, now)

	res, err := svc.RunPayPalSync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 3, res.Updated)
	assert.Zero(t, res.Failed)
	assert.Equal(t, types.PayPalStatusActive, store.statuses["u1"])
	assert.Equal(t, types.PayPalStatusCancelled, store.statuses["u2"])
	assert.Equal(t, types.PayPalStatusExpired, store.statuses["u3"])
	assert.Equal(t, now, store.syncedAt["u1"])
}

func TestRunPayPalSync_FetchFailureRecordsSyncError(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakePayPalStore{users: []*models.User{
		paypalUser("u1", "I-AAA"),
		paypalUser("u2", "I-BAD"),
	}}
	billing := &fakeBilling{
		statuses: map[string]types.PayPalStatus{"I-AAA": types.PayPalStatusActive},
		errIDs:   map[string]bool{"I-BAD": true},
	}
	svc := newSyncService(store, billing, now)

	res, err := svc.RunPayPalSync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Failed)
	require.Contains(t, res.Failures, "u2")

	// the failed fetch is still recorded on the user as SYNC_ERROR
	assert.Equal(t, types.PayPalStatusSyncError, store.statuses["u2"])
	assert.Equal(t, types.PayPalStatusActive, store.statuses["u1"])
}

func TestRunPayPalSync_StoreFailureDoesNotAbort(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakePayPalStore{
		users:   []*models.User{paypalUser("u1", "I-AAA"), paypalUser("u2", "I-BBB")},
		failIDs: map[string]bool{"u1": true},
	}
	billing := &fakeBilling{statuses: map[string]types.PayPalStatus{
		"I-AAA": types.PayPalStatusActive,
		"I-BBB": types.PayPalStatusActive,
	}}
	svc := newSyncService(store, billing, now)

	res, err := svc.RunPayPalSync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Failed)
	require.Contains(t, res.Failures, "u1")
	assert.Equal(t, types.PayPalStatusActive, store.statuses["u2"])
}

func TestRunPayPalSync_RateLimited(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakePayPalStore{users: []*models.User{paypalUser("u1", "I-AAA")}}
	billing := &fakeBilling{statuses: map[string]types.PayPalStatus{"I-AAA": types.PayPalStatusActive}}
	svc := newSyncService(store, billing, now)

	// saturate this minute's counter before the run
	key := fmt.Sprintf("ratelimit:paypal:%s", now.Format("200601021504"))
	for i := 0; i < paypalCallsPerMinute; i++ {
		_, err := svc.kv.Incr(context.Background(), key, 2*time.Minute)
		require.NoError(t, err)
	}

	res, err := svc.RunPayPalSync(context.Background())
	require.NoError(t, err)

	assert.Zero(t, res.Updated)
	assert.Equal(t, 1, res.Failed)
	require.Contains(t, res.Failures, "u1")
	assert.Zero(t, billing.calls)
}

func TestRunPayPalSync_RecordsStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakePayPalStore{users: []*models.User{paypalUser("u1", "I-AAA")}}
	billing := &fakeBilling{statuses: map[string]types.PayPalStatus{"I-AAA": types.PayPalStatusActive}}
	svc := newSyncService(store, billing, now)

	_, err := svc.RunPayPalSync(context.Background())
	require.NoError(t, err)

	st, err := svc.JobStatus(context.Background(), JobPayPalSync)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, 1, st.Processed)
	assert.Equal(t, 1, st.Mutated)
}
