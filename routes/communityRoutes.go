package routes

import (
	"maduraiclean-be/controllers"
	"maduraiclean-be/middlewares"

	"github.com/gin-gonic/gin"
)

// CommunityRoutes sets up the events, leaderboard and comment routes
func CommunityRoutes(r *gin.Engine) {
	community := r.Group("/api/community")
	{
		community.GET("/events", controllers.GetEvents)
		community.POST("/events/:id/rsvp", middlewares.AuthMiddleware(), controllers.RSVPEvent)
		community.GET("/leaderboard", controllers.GetLeaderboard)
		community.POST("/comments", middlewares.AuthMiddleware(), controllers.AddComment)
	}
}
