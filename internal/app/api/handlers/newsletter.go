package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/newsletter"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

type newsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary      Subscribe to the newsletter
// @Tags         Newsletter
// @Accept       json
// @Produce      json
// @Param        request body handlers.newsletterRequest true "Subscriber email"
// @Success      200  {object}  handlers.RespOK
// @Router       /newsletter/subscribe [post]
func ApiNewsletterSubscribe(nl *newsletter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		sub, err := nl.Subscribe(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Unsubscribe from the newsletter
// @Tags         Newsletter
// @Accept       json
// @Produce      json
// @Param        request body handlers.newsletterRequest true "Subscriber email"
// @Success      200  {object}  handlers.RespOK
// @Router       /newsletter/unsubscribe [post]
func ApiNewsletterUnsubscribe(nl *newsletter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if err := nl.Unsubscribe(c.Request.Context(), req.Email); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

type broadcastRequest struct {
	Subject  string `json:"subject" binding:"required"`
	HTMLBody string `json:"html_body" binding:"required"`
}

// @Summary      Broadcast a newsletter
// @Description  Sends the message to every active subscriber; per-recipient failures are reported, not fatal.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.broadcastRequest true "Message"
// @Success      200  {object}  handlers.RespBroadcast
// @Router       /api/v1/admin/newsletter/broadcast [post]
func ApiNewsletterBroadcast(nl *newsletter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req broadcastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := nl.Broadcast(c.Request.Context(), req.Subject, req.HTMLBody)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterNewsletterRoutes(r gin.IRouter, nl *newsletter.Service) {
	r.POST("/newsletter/subscribe", ApiNewsletterSubscribe(nl))
	r.POST("/newsletter/unsubscribe", ApiNewsletterUnsubscribe(nl))
}
