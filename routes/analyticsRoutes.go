package routes

import (
	"maduraiclean-be/controllers"

	"github.com/gin-gonic/gin"
)

// AnalyticsRoutes sets up the read-only analytics routes
func AnalyticsRoutes(r *gin.Engine) {
	analytics := r.Group("/api/analytics")
	{
		analytics.GET("/overview", controllers.GetOverview)
		analytics.GET("/trends", controllers.GetTrends)
		analytics.GET("/predictions", controllers.GetPredictions)
	}
}
