package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ward is immutable reference data seeded at startup.
type Ward struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Zone string             `bson:"zone" json:"zone"`
}
