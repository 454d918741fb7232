package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingRepo "paintbook/database/repository/booking"
	userRepo "paintbook/database/repository/user"
	"paintbook/models"
	"paintbook/utils"

	"go.uber.org/zap"
)

// AssignmentEngine picks the single best slot out of a set of candidates that
// all cover the requested interval.
type AssignmentEngine interface {
	SelectBest(ctx context.Context, candidates []models.AvailabilitySlot) (models.AvailabilitySlot, error)
}

// DefaultAssignmentEngine scores each candidate's painter and selects the
// maximum, breaking score ties by earliest slot start.
type DefaultAssignmentEngine struct {
	Scorer         ProviderScorer
	UserRepo       userRepo.UserRepository
	BookingRepo    bookingRepo.BookingRepository
	Responsiveness ResponsivenessProvider
	Now            func() time.Time
}

type scoredCandidate struct {
	slot  models.AvailabilitySlot
	score float64
}

// SelectBest fails with NoCandidates on an empty list; the caller treats that as
// the trigger to search for alternatives, not as a user-facing error. A single
// candidate is returned as-is without touching the scorer, which keeps the
// common one-painter case deterministic and cheap.
func (e *DefaultAssignmentEngine) SelectBest(ctx context.Context, candidates []models.AvailabilitySlot) (models.AvailabilitySlot, error) {
	if len(candidates) == 0 {
		return models.AvailabilitySlot{}, NewNoCandidates("no covering slot available")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	now := e.Now()
	statsCache := make(map[string]ScoringContext, len(candidates))
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, slot := range candidates {
		sc, err := e.scoringContext(ctx, slot, statsCache)
		if err != nil {
			return models.AvailabilitySlot{}, err
		}
		scored = append(scored, scoredCandidate{slot: slot, score: e.Scorer.Score(sc, now)})
	}

	// Full sort, not a max scan: equal scores are common (two brand-new painters
	// land in the same tier) and the start-time tie-break must be exact.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].slot.Start.Before(scored[j].slot.Start)
	})

	best := scored[0]
	utils.GetLogger().Debug("assignment: selected best candidate",
		zap.String("slotID", best.slot.ID),
		zap.String("providerID", best.slot.ProviderID),
		zap.Float64("score", best.score),
		zap.Int("candidates", len(candidates)))
	return best.slot, nil
}

// scoringContext assembles the per-candidate bundle the scorer consumes. Painter
// stats are cached per call since several candidate slots may share an owner.
func (e *DefaultAssignmentEngine) scoringContext(ctx context.Context, slot models.AvailabilitySlot, cache map[string]ScoringContext) (ScoringContext, error) {
	if cached, ok := cache[slot.ProviderID]; ok {
		cached.Slot = slot
		return cached, nil
	}

	provider, err := e.UserRepo.GetByID(ctx, slot.ProviderID)
	if err != nil {
		return ScoringContext{}, fmt.Errorf("failed to load painter %s for scoring: %w", slot.ProviderID, err)
	}

	total, confirmed, err := e.BookingRepo.CountByProvider(ctx, slot.ProviderID)
	if err != nil {
		return ScoringContext{}, fmt.Errorf("failed to count painter %s bookings: %w", slot.ProviderID, err)
	}

	avgResponse, err := e.Responsiveness.AvgResponseMinutes(ctx, slot.ProviderID)
	if err != nil {
		return ScoringContext{}, fmt.Errorf("failed to fetch painter %s responsiveness: %w", slot.ProviderID, err)
	}

	sc := ScoringContext{
		Slot:              slot,
		ProviderCreatedAt: provider.CreatedAt,
		ConfirmedBookings: confirmed,
		TotalBookings:     total,
		AvgResponseMin:    avgResponse,
	}
	cache[slot.ProviderID] = sc
	return sc, nil
}
