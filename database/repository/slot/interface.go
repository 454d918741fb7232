// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"
	"time"

	"paintbook/models"
)

// Reservation failures the lifecycle manager must tell apart. ErrSlotConflict is
// the losing side of a reservation race (or a redundant reserve/release);
// ErrSlotNotFound is a missing slot.
var (
	ErrSlotNotFound = errors.New("availability slot not found")
	ErrSlotConflict = errors.New("availability slot reservation conflict")
)

// SlotRepository is the query and reservation surface of the slot store.
// Reserve and Release are single compare-and-swap updates against the reserved
// flag; the version counter is bumped on every flag mutation so concurrent
// writers cannot silently overwrite each other.
type SlotRepository interface {
	Create(ctx context.Context, slot *models.AvailabilitySlot) error
	FindByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error)
	FindByProvider(ctx context.Context, providerID string) ([]models.AvailabilitySlot, error)
	// FindCoveringFreeSlots returns every free slot, across all painters, whose
	// interval fully contains [start, end]. Order is unspecified.
	FindCoveringFreeSlots(ctx context.Context, start, end time.Time) ([]models.AvailabilitySlot, error)
	// FindFreeSlotsInWindow returns free slots lying fully inside
	// [windowStart, windowEnd] with duration >= minDuration.
	FindFreeSlotsInWindow(ctx context.Context, windowStart, windowEnd time.Time, minDuration time.Duration) ([]models.AvailabilitySlot, error)
	// FindOverlapping returns the painter's slots that overlap [start, end].
	FindOverlapping(ctx context.Context, providerID string, start, end time.Time) ([]models.AvailabilitySlot, error)
	// Reserve marks a free slot reserved. It fails with ErrSlotConflict when the
	// slot is already reserved and ErrSlotNotFound when it does not exist.
	Reserve(ctx context.Context, slotID string) error
	// Release marks a reserved slot free. It fails with ErrSlotConflict when the
	// slot is already free and ErrSlotNotFound when it does not exist.
	Release(ctx context.Context, slotID string) error
	// DeleteByID removes a painter's unreserved slot.
	DeleteByID(ctx context.Context, providerID, slotID string) error
}
