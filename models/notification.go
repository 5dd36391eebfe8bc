package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a per-user in-app message with an unread/read flag.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewReportMessage builds the officer alert for a fresh report. The
// description is truncated to 50 runes so long reports stay readable.
func NewReportMessage(category, description string) string {
	runes := []rune(description)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return fmt.Sprintf("New %s report in your ward: %s...", category, string(runes))
}
