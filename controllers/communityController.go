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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetEvents lists cleanup events by date with ward name and RSVP count.
func GetEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := config.GetCollection("cleanup_events").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}
	defer cursor.Close(ctx)

	var events []models.CleanupEvent
	if err := cursor.All(ctx, &events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode events"})
		return
	}

	rsvpCollection := config.GetCollection("rsvps")
	views := make([]gin.H, 0, len(events))
	for _, event := range events {
		rsvpCount, err := rsvpCollection.CountDocuments(ctx, bson.M{"event": event.ID})
		if err != nil {
			rsvpCount = 0
		}

		view := gin.H{
			"id":          event.ID,
			"wardId":      event.WardID,
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"location":    event.Location,
			"rsvp_count":  rsvpCount,
		}
		var ward models.Ward
		if err := config.GetCollection("wards").FindOne(ctx, bson.M{"_id": event.WardID}).Decode(&ward); err == nil {
			view["ward_name"] = ward.Name
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, views)
}

// RSVPEvent records attendance for the calling user and awards 10 volunteer
// points. The unique (user, event) index makes a second RSVP fail instead of
// being silently ignored, so points are awarded at most once per event.
func RSVPEvent(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventCount, err := config.GetCollection("cleanup_events").CountDocuments(ctx, bson.M{"_id": eventID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check event"})
		return
	}
	if eventCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	rsvp := models.RSVP{
		ID:        primitive.NewObjectID(),
		UserID:    userObjID,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}
	if _, err := config.GetCollection("rsvps").InsertOne(ctx, rsvp); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Already RSVPed to this event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to RSVP"})
		return
	}

	// Create-if-absent profile, then award points.
	_, err = config.GetCollection("volunteer_profiles").UpdateOne(ctx,
		bson.M{"userId": userObjID},
		bson.M{
			"$inc":         bson.M{"points": models.RSVPPoints},
			"$setOnInsert": bson.M{"badge": models.DefaultBadge},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "RSVP successful, points awarded!"})
}

// GetLeaderboard returns the top 10 volunteers by points.
func GetLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetLimit(10)

	cursor, err := config.GetCollection("volunteer_profiles").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve leaderboard"})
		return
	}
	defer cursor.Close(ctx)

	var profiles []models.VolunteerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard"})
		return
	}

	leaderboard := make([]gin.H, 0, len(profiles))
	for _, profile := range profiles {
		entry := gin.H{
			"points": profile.Points,
			"badge":  profile.Badge,
		}
		var user models.User
		if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": profile.UserID}).Decode(&user); err == nil {
			entry["name"] = user.Name
		}
		leaderboard = append(leaderboard, entry)
	}

	c.JSON(http.StatusOK, leaderboard)
}

// AddComment appends a comment to an existing report.
func AddComment(c *gin.Context) {
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
		ReportID string `json:"report_id" binding:"required"`
		Content  string `json:"content" binding:"required,max=1000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reportID, err := primitive.ObjectIDFromHex(input.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reportCount, err := config.GetCollection("reports").CountDocuments(ctx, bson.M{"_id": reportID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check report"})
		return
	}
	if reportCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    userObjID,
		ReportID:  reportID,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if _, err := config.GetCollection("comments").InsertOne(ctx, comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": comment.ID, "message": "Comment added"})
}
