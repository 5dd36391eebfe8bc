package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleCitizen     Role = "citizen"
	RoleVolunteer   Role = "volunteer"
	RoleWardOfficer Role = "ward_officer"
	RoleAdmin       Role = "admin"
)

// ValidRole reports whether s is one of the four known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCitizen, RoleVolunteer, RoleWardOfficer, RoleAdmin:
		return true
	}
	return false
}

// CanManageReports reports whether the role may transition report statuses
// and read feedback.
func (r Role) CanManageReports() bool {
	return r == RoleWardOfficer || r == RoleAdmin
}

type User struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email" json:"email"`
	Password  string              `bson:"password,omitempty" json:"-"`
	Role      Role                `bson:"role" json:"role"`
	WardID    *primitive.ObjectID `bson:"wardId,omitempty" json:"wardId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
