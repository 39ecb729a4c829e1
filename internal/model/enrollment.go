package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// EnrollmentRecord is written once per checkout and references every purchased class.
type EnrollmentRecord struct {
	ID            primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail     string               `json:"userEmail" bson:"userEmail"`
	ClassesID     []primitive.ObjectID `json:"classesId" bson:"classesId"`
	TransactionID string               `json:"transactionId" bson:"transactionId"`
}

// EnrolledClass is one row of the enrolled-classes join.
type EnrolledClass struct {
	Classes    Class `json:"classes" bson:"classes"`
	Instructor *User `json:"instructor,omitempty" bson:"instructor,omitempty"`
}
