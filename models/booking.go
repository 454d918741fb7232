package models

import "time"

// Booking statuses. Transitions move one way only: Pending -> Confirmed,
// Pending -> Cancelled, Confirmed -> Cancelled. Nothing leaves Cancelled.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking links a customer to a painter for a time window. SlotID references the
// consumed availability slot; it is empty only when no slot record backs the
// booking, which the current creation paths never produce.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	SlotID     string    `bson:"slotId,omitempty" json:"slotId,omitempty"`
	Start      time.Time `bson:"start" json:"start"`
	End        time.Time `bson:"end" json:"end"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateBookingRequest defines the payload for requesting a booking.
type CreateBookingRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// BookAlternativeRequest books a previously proposed alternative slot for the
// originally requested duration.
type BookAlternativeRequest struct {
	SlotID          string `json:"slotId" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
}

// UpdateBookingStatusRequest defines the payload for a status transition.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResult is the outcome of a booking request. Exactly one branch is set:
// either a booking was created, or the request could not be covered and nearby
// alternatives (possibly none) are proposed instead.
type BookingResult struct {
	Booking      *Booking           `json:"booking,omitempty"`
	Alternatives []AvailabilitySlot `json:"alternatives"`
}

// BookingFilter narrows a user's booking listing.
type BookingFilter struct {
	Status    string
	StartDate time.Time
	EndDate   time.Time
}
