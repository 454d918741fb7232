package models

import "time"

// User roles. A painter owns availability slots; a customer books them.
const (
	RoleCustomer = "customer"
	RolePainter  = "painter"
)

// User represents a platform account (customer or painter).
type User struct {
	ID            string         `bson:"id" json:"id"`
	Username      string         `bson:"username" json:"username"`
	Email         string         `bson:"email" json:"email"`
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	Role          string         `bson:"role" json:"role"`
	PhoneNumber   string         `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistrationRequest defines the payload for registering a new account.
type UserRegistrationRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=customer painter"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthRequest defines the login payload.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the authenticated account.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
