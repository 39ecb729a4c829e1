package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem links a class to the user who intends to buy it.
type CartItem struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassID  string             `json:"classId" bson:"classId"`
	UserMail string             `json:"userMail" bson:"userMail"`
	Date     time.Time          `json:"date" bson:"date"`
}

// AddToCartRequest is the payload for POST /add-to-cart.
type AddToCartRequest struct {
	ClassID  string `json:"classId" binding:"required,objectid"`
	UserMail string `json:"userMail" binding:"required,email"`
}
