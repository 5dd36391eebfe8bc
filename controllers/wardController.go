package controllers

import (
	"context"
	"net/http"
	"time"

	"maduraiclean-be/config"
	"maduraiclean-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetWards lists all wards alphabetically.
func GetWards(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := config.GetCollection("wards").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wards"})
		return
	}
	defer cursor.Close(ctx)

	wards := []models.Ward{}
	if err := cursor.All(ctx, &wards); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode wards"})
		return
	}

	c.JSON(http.StatusOK, wards)
}
