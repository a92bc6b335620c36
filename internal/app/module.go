package app

import (
	"time"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/api/server"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/account"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/catalog"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/jobs"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/livestream"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/newsletter"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/orders"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/progress"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/stats"
	"github.com/YoavDdev/studio-boaz-backend/internal/platform/db"
	"github.com/YoavDdev/studio-boaz-backend/internal/platform/kvstore"
	"github.com/YoavDdev/studio-boaz-backend/internal/platform/paypalapi"
	"github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	kvstore.Module,
	paypalapi.Module,
	server.Module,
	account.Module,
	catalog.Module,
	orders.Module,
	progress.Module,
	newsletter.Module,
	livestream.Module,
	stats.Module,
	jobs.Module,
)
