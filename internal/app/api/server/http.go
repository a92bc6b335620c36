package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/YoavDdev/studio-boaz-backend/docs"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/api/handlers"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/account"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/catalog"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/jobs"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/livestream"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/newsletter"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/orders"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/progress"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/stats"
	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"

	mw "github.com/YoavDdev/studio-boaz-backend/internal/app/api/middleware"

	metrics "github.com/YoavDdev/studio-boaz-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Engine     *gin.Engine
	Log        *zap.SugaredLogger
	Cfg        *cfgpkg.Config
	Accounts   *account.Service
	Catalog    *catalog.Service
	Orders     *orders.Service
	Progress   *progress.Service
	Newsletter *newsletter.Service
	LiveStream *livestream.Service
	Jobs       *jobs.Service
	Stats      *stats.Service
}

func registerRoutes(d routeDeps) {
	r, log, cfg := d.Engine, d.Log, d.Cfg

	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			MetricsList: []*metrics.Metric{metrics.MetricsEntitlementDecision},
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	handlers.RegisterNewsletterRoutes(pub, d.Newsletter)
	handlers.RegisterOrderWebhookRoutes(pub, d.Orders)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authenticated APIs
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(), mw.AuthMiddleware(cfg))

	handlers.RegisterCatalogRoutes(apiV1, d.Catalog)
	handlers.RegisterAccessRoutes(apiV1, d.Accounts, d.Catalog, d.Orders)
	handlers.RegisterOrderRoutes(apiV1, d.Orders)
	handlers.RegisterProgressRoutes(apiV1, d.Progress)
	handlers.RegisterLiveStreamRoutes(apiV1, d.LiveStream)

	// Admin APIs
	admin := apiV1.Group("/admin")
	admin.Use(mw.RequireAdmin())
	handlers.RegisterAdminRoutes(admin, d.Accounts, d.Catalog, d.Orders, d.Newsletter, d.LiveStream, d.Jobs, d.Stats)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
