package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "paintbook/database/repository/booking"
	slotRepo "paintbook/database/repository/slot"
	userRepo "paintbook/database/repository/user"
	"paintbook/models"
	"paintbook/services/notification"
	"paintbook/utils"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	SlotRepo        slotRepo.SlotRepository
	BookingRepo     bookingRepo.BookingRepository
	UserRepo        userRepo.UserRepository
	Engine          AssignmentEngine
	Alternatives    AlternativeFinder
	NotificationSvc notification.NotificationService
	Reminders       ReminderScheduler
	Now             func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// resolveCustomer loads the requesting account and checks its role. A missing
// account and a wrong role both surface as NotFound so the response leaks
// nothing about which one it was.
func (s *DefaultBookingService) resolveCustomer(ctx context.Context, customerID string) (*models.User, error) {
	user, err := s.UserRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, NewNotFound("customer %s not found", customerID)
		}
		return nil, fmt.Errorf("failed to resolve customer %s: %w", customerID, err)
	}
	if user.Role != models.RoleCustomer {
		return nil, NewNotFound("customer %s not found", customerID)
	}
	return user, nil
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID string, start, end time.Time) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	if _, err := s.resolveCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if err := ValidateTimeRange(s.now(), start, end); err != nil {
		return nil, err
	}

	candidates, err := s.SlotRepo.FindCoveringFreeSlots(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("covering slot query failed: %w", err)
	}

	winner, err := s.Engine.SelectBest(ctx, candidates)
	if err != nil {
		if !IsCode(err, CodeNoCandidates) {
			return nil, err
		}
		// Soft failure: no painter covers the request. Propose nearby slots as
		// data; an empty list is still a successful response.
		alternatives, altErr := s.Alternatives.FindAlternatives(ctx, start, end)
		if altErr != nil {
			return nil, altErr
		}
		logger.Info("booking: no covering slot, returning alternatives",
			zap.String("customerID", customerID),
			zap.Int("alternatives", len(alternatives)))
		return &models.BookingResult{Alternatives: alternatives}, nil
	}

	booking, err := s.confirmOnSlot(ctx, customerID, winner, start, end)
	if err != nil {
		return nil, err
	}
	return &models.BookingResult{Booking: booking, Alternatives: []models.AvailabilitySlot{}}, nil
}

func (s *DefaultBookingService) BookAlternativeSlot(ctx context.Context, customerID, slotID string, duration time.Duration) (*models.Booking, error) {
	if _, err := s.resolveCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, NewInvalidInput("requested duration must be positive")
	}

	slot, err := s.SlotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, NewNotFound("slot %s not found", slotID)
		}
		return nil, fmt.Errorf("failed to load slot %s: %w", slotID, err)
	}
	// An already-consumed alternative is gone from the caller's point of view.
	if slot.Reserved {
		return nil, NewNotFound("slot %s not found", slotID)
	}

	end := slot.Start.Add(duration)
	if end.After(slot.End) {
		return nil, NewInvalidRange("requested duration %s exceeds slot span ending %s",
			duration, slot.End.Format(time.RFC3339))
	}

	return s.confirmOnSlot(ctx, customerID, *slot, slot.Start, end)
}

// confirmOnSlot reserves the slot and persists a Confirmed booking on it.
// Reservation comes first because it is the single atomic enforcement point
// against racing requests; if persisting the booking then fails, the slot is
// released again so no half-created booking survives.
func (s *DefaultBookingService) confirmOnSlot(ctx context.Context, customerID string, slot models.AvailabilitySlot, start, end time.Time) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := s.SlotRepo.Reserve(ctx, slot.ID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotConflict):
			return nil, NewConflict("slot %s was reserved by a concurrent request", slot.ID)
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			return nil, NewNotFound("slot %s not found", slot.ID)
		default:
			return nil, fmt.Errorf("failed to reserve slot %s: %w", slot.ID, err)
		}
	}

	now := s.now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProviderID: slot.ProviderID,
		SlotID:     slot.ID,
		Start:      start,
		End:        end,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		if relErr := s.SlotRepo.Release(ctx, slot.ID); relErr != nil {
			logger.Error("booking: failed to release slot after create failure",
				zap.String("slotID", slot.ID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking: confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("customerID", customerID),
		zap.String("providerID", slot.ProviderID),
		zap.String("slotID", slot.ID))

	if s.NotificationSvc != nil {
		if err := s.NotificationSvc.NotifyBookingConfirmed(ctx, *booking); err != nil {
			logger.Warn("booking: confirmation notification failed",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, *booking); err != nil {
			logger.Warn("booking: reminder scheduling failed",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, newStatus, requesterID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !models.ValidBookingStatus(newStatus) {
		return nil, NewInvalidInput("unknown booking status %q", newStatus)
	}

	booking, err := s.BookingRepo.FindByIDForUser(ctx, bookingID, requesterID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, NewNotFound("booking %s not found", bookingID)
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}

	switch {
	case booking.Status == models.BookingStatusCancelled:
		return nil, NewInvalidTransition("booking %s is cancelled and cannot change status", bookingID)
	case newStatus == booking.Status:
		return nil, NewInvalidTransition("booking %s already has status %s", bookingID, newStatus)
	case newStatus == models.BookingStatusPending:
		return nil, NewInvalidTransition("booking %s cannot return to %s", bookingID, newStatus)
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", bookingID, err)
	}
	booking.Status = newStatus
	booking.UpdatedAt = s.now()

	// Cancellation frees the consumed slot so it can be booked again.
	if newStatus == models.BookingStatusCancelled && booking.SlotID != "" {
		if err := s.SlotRepo.Release(ctx, booking.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotConflict) {
				// Slot was already free; the reserved flag and the active booking
				// drifted apart. Log it rather than failing the cancellation.
				logger.Warn("booking: cancelled booking referenced an unreserved slot",
					zap.String("bookingID", bookingID), zap.String("slotID", booking.SlotID))
			} else {
				return nil, fmt.Errorf("failed to release slot %s: %w", booking.SlotID, err)
			}
		}
		if s.NotificationSvc != nil {
			if err := s.NotificationSvc.NotifyBookingCancelled(ctx, *booking); err != nil {
				logger.Warn("booking: cancellation notification failed",
					zap.String("bookingID", bookingID), zap.Error(err))
			}
		}
	}

	return booking, nil
}

func (s *DefaultBookingService) GetBookingByID(ctx context.Context, bookingID, requesterID string) (*models.Booking, error) {
	var (
		booking *models.Booking
		err     error
	)
	if requesterID == "" {
		booking, err = s.BookingRepo.FindByID(ctx, bookingID)
	} else {
		booking, err = s.BookingRepo.FindByIDForUser(ctx, bookingID, requesterID)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, NewNotFound("booking %s not found", bookingID)
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	return booking, nil
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string, filter models.BookingFilter) ([]models.Booking, error) {
	if filter.Status != "" && !models.ValidBookingStatus(filter.Status) {
		return nil, NewInvalidInput("unknown booking status %q", filter.Status)
	}
	bookings, err := s.BookingRepo.FindUserBookings(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}
