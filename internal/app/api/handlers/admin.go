package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/account"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/catalog"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/jobs"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/livestream"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/newsletter"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/orders"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/stats"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// @Summary      List users
// @Description  Scans users with optional field filters, paging and sorting.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body account.ScanUsersRequest true "Scan request"
// @Success      200  {object}  handlers.RespScanUsers
// @Router       /api/v1/admin/users/list [post]
func ApiListUsers(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.ScanUsersRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := accounts.ScanUsers(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

type overridePlanRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	SubscriptionID string `json:"subscription_id"`
}

// @Summary      Override a user's plan
// @Description  Sets the raw subscription id on a user, recording the operator in the entitlement change log.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.overridePlanRequest true "Override request"
// @Success      200  {object}  handlers.RespUser
// @Router       /api/v1/admin/users/override_plan [post]
func ApiOverridePlan(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req overridePlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		user, err := accounts.OverridePlan(c.Request.Context(), req.UserID, req.SubscriptionID, c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, account.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(user))
	}
}

// @Summary      Run the trial-expiry sweep now
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespTrialSweep
// @Router       /api/v1/admin/jobs/trial_sweep [post]
func ApiRunTrialSweep(jb *jobs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := jb.RunTrialSweep(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Run the PayPal status sync now
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespPayPalSync
// @Router       /api/v1/admin/jobs/paypal_sync [post]
func ApiRunPayPalSync(jb *jobs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := jb.RunPayPalSync(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Last run status of a batch job
// @Tags         Admin
// @Produce      json
// @Param        job path string true "Job name" Enums(trial_sweep, paypal_sync)
// @Success      200  {object}  handlers.RespJobStatus
// @Router       /api/v1/admin/jobs/{job}/status [get]
func ApiJobStatus(jb *jobs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		job := c.Param("job")
		if job != jobs.JobTrialSweep && job != jobs.JobPayPalSync {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "unknown job: "+job))
			return
		}
		st, err := jb.JobStatus(c.Request.Context(), job)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		if st == nil {
			c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
			return
		}
		c.JSON(http.StatusOK, response.OKT(st))
	}
}

// @Summary      Admin dashboard overview
// @Description  Plan distribution, daily signups, completed purchases and revenue.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespStatsOverview
// @Router       /api/v1/admin/stats/overview [get]
func ApiStatsOverview(st *stats.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := st.Overview(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Schedule a live stream
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body livestream.ScheduleRequest true "Stream payload"
// @Success      200  {object}  handlers.RespLiveStream
// @Router       /api/v1/admin/livestreams [post]
func ApiScheduleLiveStream(ls *livestream.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req livestream.ScheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		stream, err := ls.Schedule(c.Request.Context(), c.GetString("user_id"), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(stream))
	}
}

// @Summary      Delete a live stream
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Stream ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/livestreams/{id} [delete]
func ApiDeleteLiveStream(ls *livestream.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ls.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, livestream.ErrStreamNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterAdminRoutes(r gin.IRouter, accounts *account.Service, cat *catalog.Service, ord *orders.Service,
	nl *newsletter.Service, ls *livestream.Service, jb *jobs.Service, st *stats.Service) {
	r.POST("/users/list", ApiListUsers(accounts))
	r.POST("/users/override_plan", ApiOverridePlan(accounts))
	r.POST("/series", ApiUpsertSeries(cat))
	r.POST("/orders/:id/refund", ApiRefundOrder(ord))
	r.POST("/newsletter/broadcast", ApiNewsletterBroadcast(nl))
	r.POST("/livestreams", ApiScheduleLiveStream(ls))
	r.DELETE("/livestreams/:id", ApiDeleteLiveStream(ls))
	r.POST("/jobs/trial_sweep", ApiRunTrialSweep(jb))
	r.POST("/jobs/paypal_sync", ApiRunPayPalSync(jb))
	r.GET("/jobs/:job/status", ApiJobStatus(jb))
	r.GET("/stats/overview", ApiStatsOverview(st))
}
