package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles and statuses used in user queries.
const (
	RoleTutor   = "tutor"
	RoleStudent = "student"

	StatusActive = "active"
)

// User is a document in the users collection. Accounts are created elsewhere;
// this service only reads them.
//
// Only the fields that queries filter or sort on, and the two secrets, are
// typed. Everything else (name, photoURL, subjects, qualifications, bio, ...)
// lands in Profile exactly as stored, so an unexpected type in one profile
// field cannot fail the decode of a whole listing.
//
// Password and FirebaseUID are decoded so the document round-trips, but they
// carry json:"-" and are also projected out by every tutor query.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalReviews int                `bson:"totalReviews" json:"totalReviews"`
	Password     string             `bson:"password,omitempty" json:"-"`
	FirebaseUID  string             `bson:"firebaseUID,omitempty" json:"-"`
	Profile      bson.M             `bson:",inline" json:"profile,omitempty"`
}

// IsActiveTutor reports whether the user is listed in the public tutor directory.
func (u *User) IsActiveTutor() bool {
	return u.Role == RoleTutor && u.Status == StatusActive
}
