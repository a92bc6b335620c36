package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/account"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/catalog"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/entitlement"
	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/orders"
	"github.com/YoavDdev/studio-boaz-backend/pkg/metrics"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// @Summary      Check series access
// @Description  Resolves whether the authenticated user may view the series. The body is the raw access decision, not the standard envelope.
// @Tags         Access
// @Produce      json
// @Param        id path string true "Series ID"
// @Success      200  {object}  entitlement.Decision
// @Failure      403  {object}  entitlement.Decision
// @Failure      404  {object}  entitlement.Decision
// @Router       /api/v1/series/{id}/access [get]
func ApiSeriesAccess(accounts *account.Service, cat *catalog.Service, ord *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := c.GetString("user_id")

		user, err := accounts.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, account.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		summary, err := cat.Summary(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		records, err := ord.RecordsFor(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		decision := entitlement.ResolveAccess(account.Snapshot(user), summary, records)
		metrics.ObserveEntitlementDecision(string(decision.AccessType), decision.HasAccess)

		// The decision body is served verbatim; only the status code varies.
		status := http.StatusOK
		if !decision.HasAccess {
			if decision.Reason != nil && *decision.Reason == entitlement.ReasonSeriesNotFound {
				status = http.StatusNotFound
			} else {
				status = http.StatusForbidden
			}
		}
		c.JSON(status, decision)
	}
}

type contentAccessResp struct {
	HasAccess bool `json:"has_access"`
}

// @Summary      Coarse content gate
// @Description  Reports whether the user may enter the content area at all (active plan or within the post-cancellation grace window).
// @Tags         Access
// @Produce      json
// @Success      200  {object}  handlers.RespContentAccess
// @Router       /api/v1/me/content-access [get]
func ApiContentAccess(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.GetUser(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, account.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		ok := entitlement.HasContentAccess(account.Snapshot(user), time.Now())
		c.JSON(http.StatusOK, response.OKT(contentAccessResp{HasAccess: ok}))
	}
}

// @Summary      Current user profile
// @Tags         Account
// @Produce      json
// @Success      200  {object}  handlers.RespUser
// @Router       /api/v1/me [get]
func ApiMe(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.GetUser(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, account.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(user))
	}
}

// @Summary      Register or refresh the current user
// @Description  Creates the user on first login with a fresh 30-day trial; subsequent calls return the existing record untouched.
// @Tags         Account
// @Produce      json
// @Success      200  {object}  handlers.RespUser
// @Router       /api/v1/me/register [post]
func ApiRegister(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.EnsureUser(c.Request.Context(),
			c.GetString("user_id"), c.GetString("user_email"), c.GetString("user_name"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(user))
	}
}

// @Summary      Cancel subscription
// @Description  Clears the user's subscription and stamps the cancellation date; content stays reachable through the grace window.
// @Tags         Account
// @Produce      json
// @Success      200  {object}  handlers.RespUser
// @Router       /api/v1/me/cancel-subscription [post]
func ApiCancelSubscription(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.CancelSubscription(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, account.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(user))
	}
}

func RegisterAccessRoutes(r gin.IRouter, accounts *account.Service, cat *catalog.Service, ord *orders.Service) {
	r.GET("/series/:id/access", ApiSeriesAccess(accounts, cat, ord))
	r.GET("/me", ApiMe(accounts))
	r.GET("/me/content-access", ApiContentAccess(accounts))
	r.POST("/me/register", ApiRegister(accounts))
	r.POST("/me/cancel-subscription", ApiCancelSubscription(accounts))
}
