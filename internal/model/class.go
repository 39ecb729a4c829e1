package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStatus is the moderation state of a class.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusRejected ClassStatus = "rejected"
)

// Class represents a yoga class offered by an instructor.
type Class struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	InstructorName  string             `json:"instructorName" bson:"instructorName"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	Status          ClassStatus        `json:"status" bson:"status"`
	Reason          string             `json:"reason,omitempty" bson:"reason,omitempty"`
	AvailableSeats  int                `json:"availableSeats" bson:"availableSeats"`
	TotalEnrolled   int                `json:"totalEnrolled" bson:"totalEnrolled"`
	VideoLink       string             `json:"videoLink,omitempty" bson:"videoLink,omitempty"`
	Submitted       time.Time          `json:"submitted" bson:"submitted"`
}

// CreateClassRequest is the instructor payload for a new class.
type CreateClassRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=200"`
	Image          string  `json:"image" binding:"omitempty,url"`
	Description    string  `json:"description" binding:"omitempty,max=5000"`
	Price          float64 `json:"price" binding:"gte=0"`
	InstructorName string  `json:"instructorName" binding:"omitempty,max=100"`
	AvailableSeats int     `json:"availableSeats" binding:"gte=0"`
	VideoLink      string  `json:"videoLink" binding:"omitempty,url"`
}

// UpdateClassRequest is the instructor payload for replacing class details.
type UpdateClassRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=200"`
	Description    string  `json:"description" binding:"omitempty,max=5000"`
	Price          float64 `json:"price" binding:"gte=0"`
	AvailableSeats int     `json:"availableSeats" binding:"gte=0"`
	VideoLink      string  `json:"videoLink" binding:"omitempty,url"`
}

// ChangeStatusRequest is the admin payload for approving or rejecting a class.
type ChangeStatusRequest struct {
	Status ClassStatus `json:"status" binding:"required,oneof=pending approved rejected"`
	Reason string      `json:"reason" binding:"omitempty,max=1000"`
}

// PopularInstructor is one row of the instructor ranking aggregation.
type PopularInstructor struct {
	TotalEnrolled int   `json:"totalEnrolled" bson:"totalEnrolled"`
	Instructor    *User `json:"instructor,omitempty" bson:"instructor,omitempty"`
}
