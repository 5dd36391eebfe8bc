package main

import (
	"log"
	"net/http"
	"os"

	"maduraiclean-be/config"
	"maduraiclean-be/routes"
	"maduraiclean-be/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	if err := config.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	if err := config.SeedData(); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	// Rate limiting is optional; the API runs without Redis.
	config.ConnectRedis()

	mailer := services.NewMailerFromEnv()
	if !mailer.Enabled() {
		log.Println("SMTP credentials not configured, email sending disabled")
	}

	r := gin.Default()
	r.Use(cors.Default())

	routes.AuthRoutes(r)
	routes.ReportRoutes(r, mailer)
	routes.WardRoutes(r)
	routes.AnalyticsRoutes(r)
	routes.CommunityRoutes(r)
	routes.NotificationRoutes(r)
	routes.FeedbackRoutes(r)
	routes.AwarenessRoutes(r)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Madurai Clean API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
