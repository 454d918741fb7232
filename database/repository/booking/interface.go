// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"paintbook/models"
)

// ErrBookingNotFound is returned when no booking matches the lookup, including
// the requester-scoped lookups where the requester is not a participant.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository is the persistence surface of the booking store.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, bookingID string) error
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// FindByIDForUser resolves a booking only when userID is its customer or its
	// painter; anything else is ErrBookingNotFound.
	FindByIDForUser(ctx context.Context, bookingID, userID string) (*models.Booking, error)
	// FindUserBookings lists bookings where the user participates as customer or
	// painter, narrowed by the filter, ascending by start time.
	FindUserBookings(ctx context.Context, userID string, filter models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
	// CountByProvider returns (total, confirmed) booking counts for a painter.
	CountByProvider(ctx context.Context, providerID string) (int64, int64, error)
}
