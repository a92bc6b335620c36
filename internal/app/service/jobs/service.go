package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/account"
	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/internal/platform/kvstore"
	"github.com/YoavDdev/studio-boaz-backend/internal/platform/paypalapi"
	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// TrialUserStore is the slice of the user directory the trial sweep needs.
type TrialUserStore interface {
	ListActiveTrialUsers(ctx context.Context) ([]*models.User, error)
	ClearExpiredTrial(ctx context.Context, userID string) error
}

// PayPalUserStore is the slice of the user directory the status sync needs.
type PayPalUserStore interface {
	ListPayPalUsers(ctx context.Context) ([]*models.User, error)
	UpdatePayPalStatus(ctx context.Context, userID string, status types.PayPalStatus, syncedAt time.Time) error
}

// Service runs the scheduled batch jobs. Each user is processed
// independently; one failure never aborts the rest of a run.
type Service struct {
	cfg         *cfgpkg.Config
	log         *zap.SugaredLogger
	kv          kvstore.Store
	trialUsers  TrialUserStore
	paypalUsers PayPalUserStore
	billing     paypalapi.StatusFetcher
	now         func() time.Time
}

func NewService(cfg *cfgpkg.Config, log *zap.SugaredLogger, kv kvstore.Store, accounts *account.Service, billing paypalapi.StatusFetcher) *Service {
	return &Service{
		cfg:         cfg,
		log:         log,
		kv:          kv,
		trialUsers:  accounts,
		paypalUsers: accounts,
		billing:     billing,
		now:         time.Now,
	}
}

func (s *Service) batchSize() int {
	if s.cfg != nil && s.cfg.Jobs.BatchSize > 0 {
		return s.cfg.Jobs.BatchSize
	}
	return 10
}

func (s *Service) batchDelay() time.Duration {
	if s.cfg != nil && s.cfg.Jobs.BatchDelay > 0 {
		return s.cfg.Jobs.BatchDelay
	}
	return 2 * time.Second
}

func (s *Service) itemTimeout() time.Duration {
	if s.cfg != nil && s.cfg.Jobs.ItemTimeout > 0 {
		return s.cfg.Jobs.ItemTimeout
	}
	return 15 * time.Second
}
