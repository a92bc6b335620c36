package jobs

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
)

// runScheduler drives both batch jobs on their configured intervals for the
// lifetime of the process.
func runScheduler(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, svc *Service) {
	sweepEvery := cfg.Jobs.TrialSweepInterval
	if sweepEvery <= 0 {
		sweepEvery = time.Hour
	}
	syncEvery := cfg.Jobs.PayPalSyncInterval
	if syncEvery <= 0 {
		syncEvery = 6 * time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Infow("job scheduler starting", "trial_sweep_every", sweepEvery, "paypal_sync_every", syncEvery)
			go func() {
				defer close(done)
				sweep := time.NewTicker(sweepEvery)
				sync := time.NewTicker(syncEvery)
				defer sweep.Stop()
				defer sync.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-sweep.C:
						if _, err := svc.RunTrialSweep(ctx); err != nil {
							log.Errorw("scheduled trial sweep failed", "err", err)
						}
					case <-sync.C:
						if _, err := svc.RunPayPalSync(ctx); err != nil {
							log.Errorw("scheduled paypal sync failed", "err", err)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			log.Infow("job scheduler stopped")
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(NewService),
	fx.Invoke(runScheduler),
)
