package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/progress"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// @Summary      Save watch progress
// @Description  Upserts the resume position for one (user, video) pair.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        request body progress.UpsertRequest true "Progress payload"
// @Success      200  {object}  handlers.RespProgress
// @Router       /api/v1/progress [put]
func ApiUpsertProgress(prg *progress.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req progress.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		wp, err := prg.Upsert(c.Request.Context(), c.GetString("user_id"), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(wp))
	}
}

// @Summary      Get watch progress for one video
// @Description  Returns the stored resume position, or null data when the video was never watched.
// @Tags         Progress
// @Produce      json
// @Param        video_uri query string true "Vimeo video URI"
// @Success      200  {object}  handlers.RespProgress
// @Router       /api/v1/progress/one [get]
func ApiGetProgress(prg *progress.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoURI := c.Query("video_uri")
		if videoURI == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "video_uri is required"))
			return
		}
		wp, err := prg.Get(c.Request.Context(), c.GetString("user_id"), videoURI)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(wp))
	}
}

// @Summary      List my watch progress
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  handlers.RespProgressList
// @Router       /api/v1/progress [get]
func ApiListProgress(prg *progress.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := prg.ListForUser(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

func RegisterProgressRoutes(r gin.IRouter, prg *progress.Service) {
	r.PUT("/progress", ApiUpsertProgress(prg))
	r.GET("/progress", ApiListProgress(prg))
	r.GET("/progress/one", ApiGetProgress(prg))
}
