package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	slotRepo "paintbook/database/repository/slot"
	userRepo "paintbook/database/repository/user"
	"paintbook/models"
	"paintbook/services/booking"
	"paintbook/utils"
)

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	SlotRepo slotRepo.SlotRepository
	UserRepo userRepo.UserRepository
	Now      func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// resolvePainter loads the owning account and checks its role, mirroring the
// customer resolution on the booking side.
func (s *DefaultAvailabilityService) resolvePainter(ctx context.Context, providerID string) (*models.User, error) {
	user, err := s.UserRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, booking.NewNotFound("painter %s not found", providerID)
		}
		return nil, fmt.Errorf("failed to resolve painter %s: %w", providerID, err)
	}
	if user.Role != models.RolePainter {
		return nil, booking.NewNotFound("painter %s not found", providerID)
	}
	return user, nil
}

func (s *DefaultAvailabilityService) CreateSlot(ctx context.Context, providerID string, start, end time.Time) (*models.AvailabilitySlot, error) {
	if _, err := s.resolvePainter(ctx, providerID); err != nil {
		return nil, err
	}
	// Availability shares the booking side's temporal legality rules.
	if err := booking.ValidateTimeRange(s.now(), start, end); err != nil {
		return nil, err
	}

	overlapping, err := s.SlotRepo.FindOverlapping(ctx, providerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("overlap check failed: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, booking.NewConflict("interval overlaps %d existing slot(s)", len(overlapping))
	}

	slot := &models.AvailabilitySlot{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		Start:      start,
		End:        end,
		Reserved:   false,
		Version:    0,
		CreatedAt:  s.now(),
	}
	if err := s.SlotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}

	utils.GetLogger().Info("availability: slot published",
		zap.String("providerID", providerID),
		zap.String("slotID", slot.ID),
		zap.Time("start", start),
		zap.Time("end", end))
	return slot, nil
}

func (s *DefaultAvailabilityService) ListProviderSlots(ctx context.Context, providerID string) ([]models.AvailabilitySlot, error) {
	if _, err := s.resolvePainter(ctx, providerID); err != nil {
		return nil, err
	}
	slots, err := s.SlotRepo.FindByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots for painter %s: %w", providerID, err)
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, providerID, slotID string) error {
	if _, err := s.resolvePainter(ctx, providerID); err != nil {
		return err
	}
	slot, err := s.SlotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return booking.NewNotFound("slot %s not found", slotID)
		}
		return fmt.Errorf("failed to load slot %s: %w", slotID, err)
	}
	if slot.ProviderID != providerID {
		return booking.NewNotFound("slot %s not found", slotID)
	}
	// A reserved slot is referenced by an active booking and must not disappear.
	if slot.Reserved {
		return booking.NewConflict("slot %s is reserved by an active booking", slotID)
	}
	if err := s.SlotRepo.DeleteByID(ctx, providerID, slotID); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	return nil
}
