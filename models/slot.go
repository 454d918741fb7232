package models

import "time"

// AvailabilitySlot is a painter-owned open interval that a single booking may consume.
// The version counter is bumped on every reserved-flag mutation and backs the
// compare-and-swap reservation path, so a lost race surfaces instead of silently
// overwriting.
type AvailabilitySlot struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Start      time.Time `bson:"start" json:"start"`
	End        time.Time `bson:"end" json:"end"`
	Reserved   bool      `bson:"reserved" json:"reserved"`
	Version    int       `bson:"version" json:"version"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Duration returns the span of the slot.
func (s AvailabilitySlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// CreateSlotRequest defines the payload for publishing painter availability.
type CreateSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}
