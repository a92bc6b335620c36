package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/livestream"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// @Summary      List upcoming live streams
// @Tags         LiveStream
// @Produce      json
// @Success      200  {object}  handlers.RespLiveStreamList
// @Router       /api/v1/livestreams [get]
func ApiListLiveStreams(ls *livestream.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := ls.ListUpcoming(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

func RegisterLiveStreamRoutes(r gin.IRouter, ls *livestream.Service) {
	r.GET("/livestreams", ApiListLiveStreams(ls))
}
