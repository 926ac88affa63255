package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a document in the payments collection. Its shape is owned by the
// payment flow, so only the id is typed.
type Payment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Fields bson.M             `bson:",inline" json:"-"`
}
