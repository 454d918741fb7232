package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	userRepo "paintbook/database/repository/user"
	"paintbook/models"
	"paintbook/utils"
)

// DefaultNotificationService appends notifications to the affected accounts.
type DefaultNotificationService struct {
	UserRepo userRepo.UserRepository
}

func (s *DefaultNotificationService) push(ctx context.Context, userID string, n models.Notification) error {
	n.ID = uuid.New().String()
	n.CreatedAt = time.Now()
	if err := s.UserRepo.PushNotification(ctx, userID, n); err != nil {
		return fmt.Errorf("failed to push notification to user %s: %w", userID, err)
	}
	return nil
}

func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, booking models.Booking) error {
	when := booking.Start.Format("2 January, 3:04 PM")

	customerNote := models.Notification{
		Type:    "booking_confirmed",
		Title:   "Booking Confirmed",
		Message: fmt.Sprintf("Your appointment on %s has been confirmed.", when),
		Data:    bookingData(booking),
	}
	if err := s.push(ctx, booking.CustomerID, customerNote); err != nil {
		return err
	}

	painterNote := models.Notification{
		Type:    "new_booking",
		Title:   "New Booking Received",
		Message: fmt.Sprintf("You have a new booking on %s.", when),
		Data:    bookingData(booking),
	}
	return s.push(ctx, booking.ProviderID, painterNote)
}

func (s *DefaultNotificationService) NotifyBookingCancelled(ctx context.Context, booking models.Booking) error {
	when := booking.Start.Format("2 January, 3:04 PM")
	note := models.Notification{
		Type:    "booking_cancelled",
		Title:   "Booking Cancelled",
		Message: fmt.Sprintf("The appointment on %s has been cancelled and the slot is open again.", when),
		Data:    bookingData(booking),
	}
	if err := s.push(ctx, booking.CustomerID, note); err != nil {
		return err
	}
	return s.push(ctx, booking.ProviderID, note)
}

func (s *DefaultNotificationService) NotifyBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger()
	when := payload.Start.Format("2 January, 3:04 PM")
	note := models.Notification{
		Type:    "booking_reminder",
		Title:   "Upcoming Appointment",
		Message: fmt.Sprintf("Reminder: your appointment starts at %s.", when),
		Data:    map[string]any{"bookingId": payload.BookingID, "start": payload.Start},
	}
	if err := s.push(ctx, payload.UserID, note); err != nil {
		return err
	}
	if err := s.push(ctx, payload.ProviderID, note); err != nil {
		return err
	}
	logger.Info("notification: booking reminder delivered",
		zap.String("bookingID", payload.BookingID))
	return nil
}

func bookingData(booking models.Booking) map[string]any {
	return map[string]any{
		"bookingId":  booking.ID,
		"providerId": booking.ProviderID,
		"customerId": booking.CustomerID,
		"start":      booking.Start,
		"end":        booking.End,
		"status":     booking.Status,
	}
}
