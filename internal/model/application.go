package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InstructorApplication is a user's request to teach. It has no review workflow.
type InstructorApplication struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Experience string             `json:"experience,omitempty" bson:"experience,omitempty"`
	PhotoURL   string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Date       time.Time          `json:"date" bson:"date"`
}

// ApplyInstructorRequest is the payload for POST /ass-instructor.
type ApplyInstructorRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Experience string `json:"experience" binding:"omitempty,max=5000"`
	PhotoURL   string `json:"photoUrl" binding:"omitempty,url"`
}
