package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level stored on a user document.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User represents a registered account.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	PhotoURL string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Role     Role               `json:"role" bson:"role"`
	Gender   string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Address  string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	About    string             `json:"about,omitempty" bson:"about,omitempty"`
	Skills   string             `json:"skills,omitempty" bson:"skills,omitempty"`
}

// CreateUserRequest is the registration payload. The role is always student.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url"`
	Gender   string `json:"gender" binding:"omitempty,max=20"`
	Address  string `json:"address" binding:"omitempty,max=255"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	About    string `json:"about" binding:"omitempty,max=2000"`
	Skills   string `json:"skills" binding:"omitempty,max=500"`
}

// UpdateUserRequest is the admin payload for replacing a user's profile fields.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     Role   `json:"role" binding:"required,oneof=student instructor admin"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url"`
	Gender   string `json:"gender" binding:"omitempty,max=20"`
	Address  string `json:"address" binding:"omitempty,max=255"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	About    string `json:"about" binding:"omitempty,max=2000"`
	Skills   string `json:"skills" binding:"omitempty,max=500"`
}
