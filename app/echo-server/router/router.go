package router

import (
	"github.com/silverkeytech/Teddy-recommendation-system/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(
	api *echo.Group,
	handler *rest.RecommendationHandler,
	authRequired echo.MiddlewareFunc,
	adminOnly echo.MiddlewareFunc,
) {
	recs := api.Group("/recommendations", authRequired)

	recs.GET("", handler.Recommend)
	recs.POST("/feedback", handler.Feedback)
	recs.GET("/ctr-summary", handler.CTRSummary, adminOnly)
	recs.POST("/rebuild", handler.Rebuild, adminOnly)
}
