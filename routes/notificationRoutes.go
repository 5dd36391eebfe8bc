package routes

import (
	"maduraiclean-be/controllers"
	"maduraiclean-be/middlewares"

	"github.com/gin-gonic/gin"
)

// NotificationRoutes sets up the per-user notification routes
func NotificationRoutes(r *gin.Engine) {
	notification := r.Group("/api/notifications", middlewares.AuthMiddleware())
	{
		notification.GET("", controllers.GetNotifications)
		notification.PATCH("/:id/read", controllers.MarkNotificationRead)
	}
}
