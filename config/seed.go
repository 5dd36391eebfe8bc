package config

import (
	"context"
	"log"
	"os"
	"time"

	"maduraiclean-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the handlers rely on: one account
// per email and one RSVP per (user, event).
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := GetCollection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	return models.EnsureRSVPIndex(GetCollection("rsvps"))
}

// SeedData loads the ward reference data, the starter cleanup events, a
// system admin and a few sample reports. Runs only against an empty wards
// collection so restarts are safe.
func SeedData() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	wardCollection := GetCollection("wards")
	count, err := wardCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	wards := []models.Ward{
		{ID: primitive.NewObjectID(), Name: "Meenakshi Amman Temple Area", Zone: "Central"},
		{ID: primitive.NewObjectID(), Name: "Anna Nagar", Zone: "East"},
		{ID: primitive.NewObjectID(), Name: "K.K. Nagar", Zone: "East"},
		{ID: primitive.NewObjectID(), Name: "Sellur", Zone: "North"},
		{ID: primitive.NewObjectID(), Name: "Tirupparankundram", Zone: "South"},
		{ID: primitive.NewObjectID(), Name: "Ellis Nagar", Zone: "West"},
		{ID: primitive.NewObjectID(), Name: "Tallakulam", Zone: "North"},
		{ID: primitive.NewObjectID(), Name: "Simmakkal", Zone: "Central"},
	}
	wardDocs := make([]interface{}, 0, len(wards))
	for _, w := range wards {
		wardDocs = append(wardDocs, w)
	}
	if _, err := wardCollection.InsertMany(ctx, wardDocs); err != nil {
		return err
	}

	events := []interface{}{
		models.CleanupEvent{
			ID:        primitive.NewObjectID(),
			WardID:    wards[0].ID,
			Title:     "Meenakshi Temple Perimeter Clean",
			Date:      time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC),
			Location:  "East Tower Entrance",
			CreatedAt: time.Now(),
		},
		models.CleanupEvent{
			ID:        primitive.NewObjectID(),
			WardID:    wards[1].ID,
			Title:     "Anna Nagar Park Restoration",
			Date:      time.Date(2026, time.March, 20, 7, 30, 0, 0, time.UTC),
			Location:  "Anna Nagar Main Park",
			CreatedAt: time.Now(),
		},
	}
	if _, err := GetCollection("cleanup_events").InsertMany(ctx, events); err != nil {
		return err
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	admin := models.User{
		ID:        primitive.NewObjectID(),
		Name:      "System Admin",
		Email:     "admin@maduraiclean.in",
		Password:  adminPassword,
		Role:      models.RoleAdmin,
		WardID:    &wards[0].ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := admin.HashPassword(); err != nil {
		return err
	}
	if _, err := GetCollection("users").InsertOne(ctx, admin); err != nil {
		return err
	}

	reports := []interface{}{
		models.Report{
			ID:          primitive.NewObjectID(),
			UserID:      admin.ID,
			WardID:      wards[0].ID,
			Category:    "Garbage Pile",
			Urgency:     models.UrgencyHigh,
			Status:      models.StatusPending,
			Description: "Large garbage accumulation near the East Tower of Meenakshi Temple.",
			Lat:         9.9195,
			Lng:         78.1215,
			ImageURLs:   []string{},
			CreatedAt:   time.Now(),
		},
		models.Report{
			ID:          primitive.NewObjectID(),
			UserID:      admin.ID,
			WardID:      wards[1].ID,
			Category:    "Clogged Drain",
			Urgency:     models.UrgencyMedium,
			Status:      models.StatusPending,
			Description: "Drainage blocked after heavy rain near Anna Nagar water tank.",
			Lat:         9.9252,
			Lng:         78.1450,
			ImageURLs:   []string{},
			CreatedAt:   time.Now(),
		},
		models.Report{
			ID:          primitive.NewObjectID(),
			UserID:      admin.ID,
			WardID:      wards[2].ID,
			Category:    "Illegal Dumping",
			Urgency:     models.UrgencyCritical,
			Status:      models.StatusPending,
			Description: "Construction debris dumped on the roadside in K.K. Nagar.",
			Lat:         9.9350,
			Lng:         78.1550,
			ImageURLs:   []string{},
			CreatedAt:   time.Now(),
		},
	}
	if _, err := GetCollection("reports").InsertMany(ctx, reports); err != nil {
		return err
	}

	log.Println("Seeded wards, events and sample reports")
	return nil
}
