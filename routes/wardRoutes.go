package routes

import (
	"maduraiclean-be/controllers"

	"github.com/gin-gonic/gin"
)

// WardRoutes sets up the ward reference data routes
func WardRoutes(r *gin.Engine) {
	r.GET("/api/wards", controllers.GetWards)
}
