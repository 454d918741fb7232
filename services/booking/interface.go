package booking

import (
	"context"
	"time"

	"paintbook/models"
)

// BookingService orchestrates the booking lifecycle: validation, candidate
// search, assignment, slot reservation, persistence, and status transitions.
type BookingService interface {
	// CreateBooking assigns the best free covering slot and confirms a booking
	// on it. When nothing covers the request it returns nearby alternatives
	// instead; no booking is created and no error is raised for that case.
	CreateBooking(ctx context.Context, customerID string, start, end time.Time) (*models.BookingResult, error)
	// BookAlternativeSlot confirms a booking on a previously proposed slot for
	// the originally requested duration, anchored at the slot start.
	BookAlternativeSlot(ctx context.Context, customerID, slotID string, duration time.Duration) (*models.Booking, error)
	// UpdateStatus applies a state-machine transition requested by one of the
	// booking's participants. Cancelling releases the referenced slot.
	UpdateStatus(ctx context.Context, bookingID, newStatus, requesterID string) (*models.Booking, error)
	// GetBookingByID resolves a booking scoped to the requester; an empty
	// requesterID is the unscoped internal/admin path.
	GetBookingByID(ctx context.Context, bookingID, requesterID string) (*models.Booking, error)
	// ListUserBookings lists bookings where the user is customer or painter,
	// ascending by start time.
	ListUserBookings(ctx context.Context, userID string, filter models.BookingFilter) ([]models.Booking, error)
}

// ReminderScheduler schedules a pre-appointment reminder for a confirmed
// booking. Implemented by the asynq task layer; failures are non-fatal to the
// booking itself.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking models.Booking) error
}
