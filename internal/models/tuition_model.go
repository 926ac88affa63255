package models

import "go.mongodb.org/mongo-driver/bson"

// Tuition is a tuition posting created by a student. Postings are written by
// other services with no enforced schema, so even the indexed fields are
// decoded as stored: StudentID is usually an ObjectID but may be a string.
// Everything else is kept in Fields so listings return the document as is.
type Tuition struct {
	ID        interface{} `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentID interface{} `bson:"studentId,omitempty" json:"studentId,omitempty"`
	Status    interface{} `bson:"status,omitempty" json:"status,omitempty"`
	Fields    bson.M      `bson:",inline" json:"-"`
}
