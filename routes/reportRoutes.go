package routes

import (
	"maduraiclean-be/controllers"
	"maduraiclean-be/middlewares"
	"maduraiclean-be/models"
	"maduraiclean-be/services"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the report lifecycle routes
func ReportRoutes(r *gin.Engine, mailer *services.Mailer) {
	rc := controllers.NewReportController(mailer)

	report := r.Group("/api/reports")
	{
		report.GET("", controllers.GetAllReports)
		report.POST("", middlewares.AuthMiddleware(), middlewares.ReportRateLimiter(10), rc.CreateReport)
		report.GET("/:id", controllers.GetReport)
		report.PATCH("/:id/status",
			middlewares.AuthMiddleware(),
			middlewares.RequireRole(string(models.RoleWardOfficer), string(models.RoleAdmin)),
			controllers.UpdateReportStatus)
		report.POST("/:id/send-email", middlewares.AuthMiddleware(), rc.ResendReportEmail)
	}
}
