package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a 1-5 rating, optionally tied to a report.
type Feedback struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"userId" json:"userId"`
	ReportID  *primitive.ObjectID `bson:"reportId,omitempty" json:"reportId,omitempty"`
	Rating    int                 `bson:"rating" json:"rating"`
	Comments  string              `bson:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// ValidRating reports whether r is inside the accepted 1-5 range.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
