package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RSVPPoints is awarded once per successful RSVP.
const RSVPPoints = 10

// DefaultBadge is the badge a profile starts with.
const DefaultBadge = "Novice"

// VolunteerProfile accumulates points for a user, created lazily on first RSVP.
type VolunteerProfile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Points int                `bson:"points" json:"points"`
	Badge  string             `bson:"badge" json:"badge"`
}
