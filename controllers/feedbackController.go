package controllers

import (
	"context"
	"net/http"
	"time"

	"maduraiclean-be/config"
	"maduraiclean-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitFeedback stores a 1-5 rating, optionally tied to a report. The report
// may be in any state; only its existence is checked.
func SubmitFeedback(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	userObjID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		Rating   int     `json:"rating" binding:"required"`
		Comments *string `json:"comments,omitempty"`
		ReportID *string `json:"report_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRating(input.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reportID *primitive.ObjectID
	if input.ReportID != nil && *input.ReportID != "" {
		objID, err := primitive.ObjectIDFromHex(*input.ReportID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
			return
		}
		count, err := config.GetCollection("reports").CountDocuments(ctx, bson.M{"_id": objID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check report"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		reportID = &objID
	}

	feedback := models.Feedback{
		ID:        primitive.NewObjectID(),
		UserID:    userObjID,
		ReportID:  reportID,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}
	if input.Comments != nil {
		feedback.Comments = *input.Comments
	}

	if _, err := config.GetCollection("feedback").InsertOne(ctx, feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": feedback.ID, "message": "Feedback submitted successfully"})
}

// GetFeedback lists all feedback for officers and admins, newest first.
func GetFeedback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection("feedback").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	if err := cursor.All(ctx, &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode feedback"})
		return
	}

	views := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		view := gin.H{
			"id":        entry.ID,
			"rating":    entry.Rating,
			"comments":  entry.Comments,
			"reportId":  entry.ReportID,
			"createdAt": entry.CreatedAt,
		}
		var user models.User
		if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": entry.UserID}).Decode(&user); err == nil {
			view["user_name"] = user.Name
		}
		if entry.ReportID != nil {
			var report models.Report
			if err := config.GetCollection("reports").FindOne(ctx, bson.M{"_id": *entry.ReportID}).Decode(&report); err == nil {
				view["report_category"] = report.Category
			}
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, views)
}
