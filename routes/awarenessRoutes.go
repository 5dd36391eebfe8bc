package routes

import (
	"maduraiclean-be/controllers"

	"github.com/gin-gonic/gin"
)

// AwarenessRoutes sets up the static awareness content routes
func AwarenessRoutes(r *gin.Engine) {
	awareness := r.Group("/api/awareness")
	{
		awareness.GET("/quiz", controllers.GetQuiz)
		awareness.GET("/tips", controllers.GetTips)
	}
}
