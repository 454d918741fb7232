package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	slotRepo "paintbook/database/repository/slot"
	"paintbook/models"
)

const (
	// DefaultAlternativeWindowHours is the symmetric search window around the
	// requested interval.
	DefaultAlternativeWindowHours = 24
	// maxAlternatives caps how many proposals a single search returns.
	maxAlternatives = 5
)

// AlternativeFinder searches for free slots near a requested interval when no
// slot covers it directly.
type AlternativeFinder interface {
	FindAlternatives(ctx context.Context, requestedStart, requestedEnd time.Time) ([]models.AvailabilitySlot, error)
}

// DefaultAlternativeFinder queries the slot store within
// [requestedStart - window, requestedEnd + window] for free slots long enough to
// hold the originally requested duration, ranked by temporal proximity to the
// requested start.
type DefaultAlternativeFinder struct {
	SlotRepo    slotRepo.SlotRepository
	WindowHours int
}

// FindAlternatives returns at most five proposals, nearest first. An empty list
// is a normal outcome, not an error; the caller surfaces it as "no alternatives".
func (f *DefaultAlternativeFinder) FindAlternatives(ctx context.Context, requestedStart, requestedEnd time.Time) ([]models.AvailabilitySlot, error) {
	window := time.Duration(f.windowHours()) * time.Hour
	minDuration := requestedEnd.Sub(requestedStart)

	slots, err := f.SlotRepo.FindFreeSlotsInWindow(ctx, requestedStart.Add(-window), requestedEnd.Add(window), minDuration)
	if err != nil {
		return nil, fmt.Errorf("alternative slot search failed: %w", err)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return absDistance(slots[i].Start, requestedStart) < absDistance(slots[j].Start, requestedStart)
	})

	if len(slots) > maxAlternatives {
		slots = slots[:maxAlternatives]
	}
	return slots, nil
}

func (f *DefaultAlternativeFinder) windowHours() int {
	if f.WindowHours <= 0 {
		return DefaultAlternativeWindowHours
	}
	return f.WindowHours
}

func absDistance(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
