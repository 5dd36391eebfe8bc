package routes

import (
	"maduraiclean-be/controllers"
	"maduraiclean-be/middlewares"
	"maduraiclean-be/models"

	"github.com/gin-gonic/gin"
)

// FeedbackRoutes sets up the feedback routes
func FeedbackRoutes(r *gin.Engine) {
	feedback := r.Group("/api/feedback", middlewares.AuthMiddleware())
	{
		feedback.POST("", controllers.SubmitFeedback)
		feedback.GET("",
			middlewares.RequireRole(string(models.RoleWardOfficer), string(models.RoleAdmin)),
			controllers.GetFeedback)
	}
}
