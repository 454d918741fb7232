package notification

import (
	"context"

	"paintbook/models"
)

// NotificationService delivers in-app notifications to booking participants.
type NotificationService interface {
	NotifyBookingConfirmed(ctx context.Context, booking models.Booking) error
	NotifyBookingCancelled(ctx context.Context, booking models.Booking) error
	NotifyBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}
