package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CleanupEvent is a ward-scoped scheduled cleanup activity.
type CleanupEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WardID      primitive.ObjectID `bson:"wardId" json:"wardId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// RSVP records a user's confirmed intent to attend an event.
type RSVP struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	EventID   primitive.ObjectID `bson:"event" json:"event"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// EnsureRSVPIndex creates a unique compound index for (user, event) so a
// duplicate RSVP fails at insert time rather than through a pre-check.
func EnsureRSVPIndex(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "event", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
