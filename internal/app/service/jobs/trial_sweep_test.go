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
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

type fakeTrialStore struct {
	users      map[string]*models.User
	failIDs    map[string]bool
	clearCalls int
}

func (f *fakeTrialStore) ListActiveTrialUsers(context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.SubscriptionID != nil && *u.SubscriptionID == types.SubscriptionTrial && u.TrialStartDate != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeTrialStore) ClearExpiredTrial(_ context.Context, userID string) error {
	f.clearCalls++
	if f.failIDs[userID] {
		return fmt.Errorf("db write failed for %s", userID)
	}
	empty := ""
	u := f.users[userID]
	u.SubscriptionID = &empty
	u.TrialStartDate = nil
	return nil
}

func trialUser(id string, startedAgo time.Duration, now time.Time) *models.User {
	trial := types.SubscriptionTrial
	start := now.Add(-startedAgo)
	return &models.User{ID: id, SubscriptionID: &trial, TrialStartDate: &start}
}

func newSweepService(store *fakeTrialStore, now time.Time) *Service {
	return &Service{
		log:        zap.NewNop().Sugar(),
		kv:         kvstore.NewMemoryStore(),
		trialUsers: store,
		now:        func() time.Time { return now },
	}
}

func TestRunTrialSweep_DowngradesOnlyExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	store := &fakeTrialStore{users: map[string]*models.User{
		"expired": trialUser("expired", 31*day, now),
		"fresh":   trialUser("fresh", 29*day, now),
	}}
	svc := newSweepService(store, now)

	res, err := svc.RunTrialSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, []string{"expired"}, res.MutatedUserIDs)
	assert.Empty(t, res.Failures)

	require.NotNil(t, store.users["expired"].SubscriptionID)
	assert.Equal(t, "", *store.users["expired"].SubscriptionID)
	assert.Nil(t, store.users["expired"].TrialStartDate)

	assert.Equal(t, types.SubscriptionTrial, *store.users["fresh"].SubscriptionID)
	assert.NotNil(t, store.users["fresh"].TrialStartDate)
}

func TestRunTrialSweep_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	store := &fakeTrialStore{users: map[string]*models.User{
		"expired": trialUser("expired", 40*day, now),
	}}
	svc := newSweepService(store, now)

	first, err := svc.RunTrialSweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"expired"}, first.MutatedUserIDs)

	second, err := svc.RunTrialSweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, second.Processed)
	assert.Empty(t, second.MutatedUserIDs)
	assert.Empty(t, second.Failures)

	// end state unchanged by the second pass
	assert.Equal(t, "", *store.users["expired"].SubscriptionID)
	assert.Nil(t, store.users["expired"].TrialStartDate)
	assert.Equal(t, 1, store.clearCalls)
}

func TestRunTrialSweep_OneFailureDoesNotAbort(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	store := &fakeTrialStore{
		users: map[string]*models.User{
			"bad":  trialUser("bad", 35*day, now),
			"good": trialUser("good", 35*day, now),
		},
		failIDs: map[string]bool{"bad": true},
	}
	svc := newSweepService(store, now)

	res, err := svc.RunTrialSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"good"}, res.MutatedUserIDs)
	require.Contains(t, res.Failures, "bad")
	assert.Equal(t, types.SubscriptionTrial, *store.users["bad"].SubscriptionID)
	assert.Equal(t, "", *store.users["good"].SubscriptionID)
}

func TestRunTrialSweep_RecordsStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeTrialStore{users: map[string]*models.User{
		"expired": trialUser("expired", 31*24*time.Hour, now),
	}}
	svc := newSweepService(store, now)

	_, err := svc.RunTrialSweep(context.Background())
	require.NoError(t, err)

	st, err := svc.JobStatus(context.Background(), JobTrialSweep)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, JobTrialSweep, st.Job)
	assert.Equal(t, 1, st.Processed)
	assert.Equal(t, 1, st.Mutated)
	assert.Zero(t, st.Failed)
}

func TestJobStatus_NeverRan(t *testing.T) {
	svc := newSweepService(&fakeTrialStore{}, time.Now())
	st, err := svc.JobStatus(context.Background(), JobPayPalSync)
	require.NoError(t, err)
	assert.Nil(t, st)
}
