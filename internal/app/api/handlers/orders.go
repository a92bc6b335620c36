package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/orders"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

type createOrderRequest struct {
	SeriesID string `json:"series_id" binding:"required"`
}

// @Summary      Create a purchase order
// @Description  Opens a PENDING order for a single series at its current price. Completion happens via the payment webhook.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body handlers.createOrderRequest true "Order request"
// @Success      200  {object}  handlers.RespPurchase
// @Router       /api/v1/orders [post]
func ApiCreateOrder(ord *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		p, err := ord.CreateOrder(c.Request.Context(), c.GetString("user_id"), req.SeriesID)
		if err != nil {
			if errors.Is(err, orders.ErrSeriesInactive) || errors.Is(err, orders.ErrAlreadyOwned) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      List my purchases
// @Tags         Orders
// @Produce      json
// @Success      200  {object}  handlers.RespPurchaseList
// @Router       /api/v1/orders [get]
func ApiListOrders(ord *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := ord.ListUserPurchases(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

type orderWebhookRequest struct {
	PurchaseID      string `json:"purchase_id" binding:"required"`
	ProviderOrderID string `json:"provider_order_id"`
	Event           string `json:"event" binding:"required"`
}

// @Summary      Payment provider order webhook
// @Description  Marks an order COMPLETED or FAILED based on the capture event. Completion is idempotent so provider retries are safe.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body handlers.orderWebhookRequest true "Capture event"
// @Success      200  {object}  handlers.RespPurchase
// @Router       /webhook/paypal/order [post]
func ApiOrderWebhook(ord *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderWebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		var (
			p   interface{}
			err error
		)
		switch req.Event {
		case "COMPLETED":
			p, err = ord.CompleteOrder(c.Request.Context(), req.PurchaseID, req.ProviderOrderID)
		case "DENIED", "FAILED":
			p, err = ord.FailOrder(c.Request.Context(), req.PurchaseID)
		default:
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "unknown event: "+req.Event))
			return
		}
		if err != nil {
			if errors.Is(err, orders.ErrPurchaseNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Refund a purchase
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Purchase ID"
// @Success      200  {object}  handlers.RespPurchase
// @Router       /api/v1/admin/orders/{id}/refund [post]
func ApiRefundOrder(ord *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := ord.RefundOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, orders.ErrPurchaseNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

func RegisterOrderRoutes(r gin.IRouter, ord *orders.Service) {
	r.POST("/orders", ApiCreateOrder(ord))
	r.GET("/orders", ApiListOrders(ord))
}

func RegisterOrderWebhookRoutes(r gin.IRouter, ord *orders.Service) {
	r.POST("/webhook/paypal/order", ApiOrderWebhook(ord))
}
