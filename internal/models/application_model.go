package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Application is a tutor applying to a tuition posting.
type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TuitionPostID primitive.ObjectID `bson:"tuitionPostId" json:"tuitionPostId"`
	TutorID       primitive.ObjectID `bson:"tutorId" json:"tutorId"`
	Status        string             `bson:"status" json:"status"`
}
