package availability

import (
	"context"
	"time"

	"paintbook/models"
)

// AvailabilityService manages painter-owned availability slots.
type AvailabilityService interface {
	// CreateSlot publishes a new open interval for the painter. The interval
	// must be valid, in the future, and must not overlap any of the painter's
	// existing slots.
	CreateSlot(ctx context.Context, providerID string, start, end time.Time) (*models.AvailabilitySlot, error)
	// ListProviderSlots returns all slots owned by the painter.
	ListProviderSlots(ctx context.Context, providerID string) ([]models.AvailabilitySlot, error)
	// DeleteSlot removes an unreserved slot owned by the painter.
	DeleteSlot(ctx context.Context, providerID, slotID string) error
}
