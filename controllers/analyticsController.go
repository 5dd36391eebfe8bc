package controllers

import (
	"context"
	"math"
	"net/http"
	"time"

	"maduraiclean-be/config"
	"maduraiclean-be/models"

	"github.com/gin-gonic/gin"
	"github.com/montanaflynn/stats"
	"go.mongodb.org/mongo-driver/bson"
)

// GetOverview returns headline counts plus by-ward and by-category rollups.
func GetOverview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reportCollection := config.GetCollection("reports")

	total, err := reportCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count reports"})
		return
	}
	resolved, err := reportCollection.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []models.ReportStatus{models.StatusResolved, models.StatusClosed}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count resolved reports"})
		return
	}
	pending, err := reportCollection.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending reports"})
		return
	}

	// Every ward appears in the rollup, including wards with zero reports.
	wardCursor, err := config.GetCollection("wards").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wards"})
		return
	}
	defer wardCursor.Close(ctx)

	var wards []models.Ward
	if err := wardCursor.All(ctx, &wards); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode wards"})
		return
	}

	byWard := make([]gin.H, 0, len(wards))
	for _, ward := range wards {
		count, err := reportCollection.CountDocuments(ctx, bson.M{"wardId": ward.ID})
		if err != nil {
			count = 0
		}
		byWard = append(byWard, gin.H{"name": ward.Name, "count": count})
	}

	categoryPipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category",
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"category": "$_id",
				"count":    1,
				"_id":      0,
			},
		},
	}
	categoryCursor, err := reportCollection.Aggregate(ctx, categoryPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category analytics"})
		return
	}
	defer categoryCursor.Close(ctx)

	var byCategory []bson.M
	if err := categoryCursor.All(ctx, &byCategory); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode category analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"resolved":   resolved,
		"pending":    pending,
		"byWard":     byWard,
		"byCategory": byCategory,
	})
}

// monthlyCounts groups reports by calendar month, ascending.
func monthlyCounts(ctx context.Context) ([]bson.M, error) {
	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id": bson.M{
					"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"},
				},
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"month": "$_id",
				"count": 1,
				"_id":   0,
			},
		},
		{
			"$sort": bson.M{"month": 1},
		},
	}

	cursor, err := config.GetCollection("reports").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var months []bson.M
	if err := cursor.All(ctx, &months); err != nil {
		return nil, err
	}
	return months, nil
}

// GetTrends returns report volume per month.
func GetTrends(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	months, err := monthlyCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trends"})
		return
	}
	if len(months) > 12 {
		months = months[:12]
	}

	c.JSON(http.StatusOK, months)
}

// GetPredictions forecasts next month's report volume as the monthly mean
// with a 10% growth factor.
func GetPredictions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	months, err := monthlyCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get predictions"})
		return
	}

	if len(months) < 2 {
		c.JSON(http.StatusOK, gin.H{"message": "Insufficient data for prediction", "predicted": 5})
		return
	}

	counts := make([]float64, 0, len(months))
	for _, m := range months {
		switch v := m["count"].(type) {
		case int32:
			counts = append(counts, float64(v))
		case int64:
			counts = append(counts, float64(v))
		case float64:
			counts = append(counts, v)
		}
	}

	avg, err := stats.Mean(counts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_avg":          avg,
		"predicted_next_month": int(math.Round(avg * 1.1)),
		"confidence":           0.75,
	})
}
