package models

import "time"

// Notification is an in-app message appended to a user's account.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	Read      bool           `bson:"read" json:"read"`
}

// ReminderPayload is the serialized body of a scheduled booking reminder task.
type ReminderPayload struct {
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	ProviderID string    `json:"providerId"`
	Start      time.Time `json:"start"`
}
