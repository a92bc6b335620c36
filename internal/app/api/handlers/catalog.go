package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YoavDdev/studio-boaz-backend/internal/app/service/catalog"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// @Summary      List visible series
// @Description  Returns active, visible series, optionally filtered by category.
// @Tags         Catalog
// @Produce      json
// @Param        category query string false "Category filter"
// @Success      200  {object}  handlers.RespSeriesList
// @Router       /api/v1/series [get]
func ApiListSeries(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.ListVisible(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Get one series
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Series ID"
// @Success      200  {object}  handlers.RespSeries
// @Router       /api/v1/series/{id} [get]
func ApiGetSeries(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := cat.GetSeries(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrSeriesNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, nil))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(series))
	}
}

// @Summary      Create or update a series
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body catalog.UpsertSeriesRequest true "Series payload"
// @Success      200  {object}  handlers.RespSeries
// @Router       /api/v1/admin/series [post]
func ApiUpsertSeries(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.UpsertSeriesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		series, err := cat.UpsertSeries(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(series))
	}
}

func RegisterCatalogRoutes(r gin.IRouter, cat *catalog.Service) {
	r.GET("/series", ApiListSeries(cat))
	r.GET("/series/:id", ApiGetSeries(cat))
}
