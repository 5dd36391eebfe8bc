package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportUrgency enum
type ReportUrgency string

const (
	UrgencyLow      ReportUrgency = "low"
	UrgencyMedium   ReportUrgency = "medium"
	UrgencyHigh     ReportUrgency = "high"
	UrgencyCritical ReportUrgency = "critical"
)

// ValidUrgency reports whether s is a known urgency level.
func ValidUrgency(s string) bool {
	switch ReportUrgency(s) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// ReportStatus enum
type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusVerified   ReportStatus = "verified"
	StatusInProgress ReportStatus = "in_progress"
	StatusResolved   ReportStatus = "resolved"
	StatusClosed     ReportStatus = "closed"
)

// ValidStatus reports whether s is a known report status.
func ValidStatus(s string) bool {
	switch ReportStatus(s) {
	case StatusPending, StatusVerified, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// allowedTransitions is the directed transition table. A report only moves one
// step forward: pending -> verified -> in_progress -> resolved -> closed.
var allowedTransitions = map[ReportStatus]ReportStatus{
	StatusPending:    StatusVerified,
	StatusVerified:   StatusInProgress,
	StatusInProgress: StatusResolved,
	StatusResolved:   StatusClosed,
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	return allowedTransitions[s] == next
}

// Report represents a citizen-filed record of a civic sanitation issue.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	WardID      primitive.ObjectID `bson:"wardId" json:"wardId"`
	Category    string             `bson:"category" json:"category"`
	Urgency     ReportUrgency      `bson:"urgency" json:"urgency"`
	Status      ReportStatus       `bson:"status" json:"status"`
	Description string             `bson:"description" json:"description"`
	Lat         float64            `bson:"lat" json:"lat"`
	Lng         float64            `bson:"lng" json:"lng"`
	ImageURLs   []string           `bson:"imageUrls" json:"imageUrls"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	ResolvedAt  *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}
