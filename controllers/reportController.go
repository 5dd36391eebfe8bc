package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"maduraiclean-be/config"
	"maduraiclean-be/models"
	"maduraiclean-be/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportController owns the report lifecycle endpoints. The mailer is
// injected at construction so there is no process-wide transport singleton.
type ReportController struct {
	Mailer *services.Mailer
}

func NewReportController(mailer *services.Mailer) *ReportController {
	return &ReportController{Mailer: mailer}
}

// CreateReport files a new report. Status is always forced to pending
// regardless of any caller-supplied value; same-ward officers get an unread
// notification and best-effort emails go out to them and the reporter.
func (rc *ReportController) CreateReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reporterID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		WardID      string   `json:"ward_id" binding:"required"`
		Category    string   `json:"category" binding:"required,max=100"`
		Urgency     string   `json:"urgency" binding:"required"`
		Description string   `json:"description" binding:"required,max=1000"`
		Lat         *float64 `json:"lat" binding:"required"`
		Lng         *float64 `json:"lng" binding:"required"`
		ImageURLs   []string `json:"image_urls,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidUrgency(input.Urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid urgency"})
		return
	}

	wardID, err := primitive.ObjectIDFromHex(input.WardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ward ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var ward models.Ward
	if err := config.GetCollection("wards").FindOne(ctx, bson.M{"_id": wardID}).Decode(&ward); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ward not found"})
		return
	}

	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	report := models.Report{
		ID:          primitive.NewObjectID(),
		UserID:      reporterID,
		WardID:      wardID,
		Category:    input.Category,
		Urgency:     models.ReportUrgency(input.Urgency),
		Status:      models.StatusPending,
		Description: input.Description,
		Lat:         *input.Lat,
		Lng:         *input.Lng,
		ImageURLs:   imageURLs,
		CreatedAt:   time.Now(),
	}

	if _, err := config.GetCollection("reports").InsertOne(ctx, report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	// Notify every ward officer assigned to the report's ward. Failures here
	// are logged and never surface as a request failure.
	officers := findWardOfficers(ctx, wardID)
	notificationCollection := config.GetCollection("notifications")
	message := models.NewReportMessage(report.Category, report.Description)
	for _, officer := range officers {
		notification := models.Notification{
			ID:        primitive.NewObjectID(),
			UserID:    officer.ID,
			Message:   message,
			Read:      false,
			CreatedAt: time.Now(),
		}
		if _, err := notificationCollection.InsertOne(ctx, notification); err != nil {
			log.Println("Error inserting notification:", err)
		}
	}

	var reporter models.User
	if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": reporterID}).Decode(&reporter); err != nil {
		log.Println("Error fetching reporter for email:", err)
	}

	emailData := services.ReportEmailData{
		Category:    report.Category,
		Urgency:     string(report.Urgency),
		Description: report.Description,
		Lat:         report.Lat,
		Lng:         report.Lng,
		WardName:    ward.Name,
	}

	go func() {
		if reporter.Email != "" {
			if err := rc.Mailer.SendReportEmail(reporter.Email, "Report Confirmation: "+report.Category, emailData); err != nil {
				log.Println(err)
			}
		}
		for _, officer := range officers {
			if officer.Email == "" {
				continue
			}
			if err := rc.Mailer.SendReportEmail(officer.Email, "New Civic Report in Your Ward: "+report.Category, emailData); err != nil {
				log.Println(err)
			}
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"id": report.ID, "message": "Report created"})
}

// GetAllReports returns reports newest first, optionally filtered by ward,
// status and category.
func GetAllReports(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if wardParam := c.Query("ward_id"); wardParam != "" {
		wardID, err := primitive.ObjectIDFromHex(wardParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ward ID"})
			return
		}
		filter["wardId"] = wardID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection("reports").Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reports"})
		return
	}

	enriched := make([]gin.H, 0, len(reports))
	for _, report := range reports {
		enriched = append(enriched, reportView(ctx, report))
	}

	c.JSON(http.StatusOK, enriched)
}

// GetReport returns a single report with its comments in posting order.
func GetReport(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var report models.Report
	err = config.GetCollection("reports").FindOne(ctx, bson.M{"_id": reportID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}

	commentOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := config.GetCollection("comments").Find(ctx, bson.M{"reportId": reportID}, commentOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode comments"})
		return
	}

	commentViews := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		view := gin.H{
			"id":        comment.ID,
			"content":   comment.Content,
			"userId":    comment.UserID,
			"createdAt": comment.CreatedAt,
		}
		var author models.User
		if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": comment.UserID}).Decode(&author); err == nil {
			view["user_name"] = author.Name
		}
		commentViews = append(commentViews, view)
	}

	response := reportView(ctx, report)
	response["comments"] = commentViews

	c.JSON(http.StatusOK, response)
}

// UpdateReportStatus transitions a report through its lifecycle. Only ward
// officers and admins reach this handler; officers are additionally scoped to
// their own ward, and moves must follow the transition table. The resolution
// timestamp is stamped exactly once, on entry into resolved.
func UpdateReportStatus(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	newStatus := models.ReportStatus(input.Status)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var report models.Report
	err = config.GetCollection("reports").FindOne(ctx, bson.M{"_id": reportID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}

	// Non-admin officers may only act on reports in their assigned ward.
	roleVal, _ := c.Get("user_role")
	if role, _ := roleVal.(string); models.Role(role) != models.RoleAdmin {
		wardVal, _ := c.Get("user_ward_id")
		wardHex, _ := wardVal.(string)
		if wardHex != report.WardID.Hex() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Report is outside your assigned ward"})
			return
		}
	}

	if !report.Status.CanTransitionTo(newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot transition report from " + string(report.Status) + " to " + string(newStatus),
		})
		return
	}

	update := bson.M{"status": newStatus}
	if newStatus == models.StatusResolved {
		update["resolvedAt"] = time.Now()
	}

	_, err = config.GetCollection("reports").UpdateOne(ctx, bson.M{"_id": reportID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// ResendReportEmail sends a copy of the report to the calling user.
func (rc *ReportController) ResendReportEmail(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	callerID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var report models.Report
	err = config.GetCollection("reports").FindOne(ctx, bson.M{"_id": reportID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}

	var caller models.User
	if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": callerID}).Decode(&caller); err != nil || caller.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User email not found"})
		return
	}

	var ward models.Ward
	if err := config.GetCollection("wards").FindOne(ctx, bson.M{"_id": report.WardID}).Decode(&ward); err != nil {
		log.Println("Error fetching ward for email:", err)
	}

	emailData := services.ReportEmailData{
		Category:    report.Category,
		Urgency:     string(report.Urgency),
		Description: report.Description,
		Lat:         report.Lat,
		Lng:         report.Lng,
		WardName:    ward.Name,
	}

	go func() {
		if err := rc.Mailer.SendReportEmail(caller.Email, "Report Copy: "+report.Category, emailData); err != nil {
			log.Println(err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

// reportView decorates a report with its reporter and ward names.
func reportView(ctx context.Context, report models.Report) gin.H {
	view := gin.H{
		"id":          report.ID,
		"userId":      report.UserID,
		"wardId":      report.WardID,
		"category":    report.Category,
		"urgency":     report.Urgency,
		"status":      report.Status,
		"description": report.Description,
		"lat":         report.Lat,
		"lng":         report.Lng,
		"imageUrls":   report.ImageURLs,
		"createdAt":   report.CreatedAt,
		"resolvedAt":  report.ResolvedAt,
	}

	var reporter models.User
	if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": report.UserID}).Decode(&reporter); err == nil {
		view["reporter_name"] = reporter.Name
	}
	var ward models.Ward
	if err := config.GetCollection("wards").FindOne(ctx, bson.M{"_id": report.WardID}).Decode(&ward); err == nil {
		view["ward_name"] = ward.Name
	}

	return view
}

// findWardOfficers lists the ward officers assigned to a ward.
func findWardOfficers(ctx context.Context, wardID primitive.ObjectID) []models.User {
	cursor, err := config.GetCollection("users").Find(ctx, bson.M{
		"role":   models.RoleWardOfficer,
		"wardId": wardID,
	})
	if err != nil {
		log.Println("Error finding ward officers:", err)
		return nil
	}
	defer cursor.Close(ctx)

	var officers []models.User
	if err := cursor.All(ctx, &officers); err != nil {
		log.Println("Error decoding ward officers:", err)
		return nil
	}
	return officers
}
