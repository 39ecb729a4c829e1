package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is an append-only record of a completed processor payment.
type PaymentRecord struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	UserEmail     string             `json:"userEmail" bson:"userEmail"`
	UserName      string             `json:"userName,omitempty" bson:"userName,omitempty"`
	ClassesID     []string           `json:"classesId" bson:"classesId"`
	Price         float64            `json:"price" bson:"price"`
	Quantity      int                `json:"quantity,omitempty" bson:"quantity,omitempty"`
	PaymentStatus string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	Date          time.Time          `json:"date" bson:"date"`
}

// PaymentInfoRequest is the checkout payload posted after the processor confirms payment.
type PaymentInfoRequest struct {
	TransactionID string    `json:"transactionId" binding:"required,min=1,max=255"`
	UserEmail     string    `json:"userEmail" binding:"required,email"`
	UserName      string    `json:"userName" binding:"omitempty,max=100"`
	ClassesID     []string  `json:"classesId" binding:"omitempty,dive,objectid"`
	Price         float64   `json:"price" binding:"gte=0"`
	Quantity      int       `json:"quantity" binding:"gte=0"`
	PaymentStatus string    `json:"paymentStatus" binding:"omitempty,max=50"`
	Date          time.Time `json:"date"`
}

// PaymentIntentRequest is the payload for POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}
