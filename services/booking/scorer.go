package booking

import (
	"time"

	"paintbook/models"
)

// Scoring weights. Each term is clamped to its stated maximum; the total is the
// plain sum of the four terms.
const (
	baseParticipationScore = 10.0
	tenurePointsPerMonth   = 0.5
	maxTenureScore         = 5.0
	maxCompletionScore     = 5.0
	neutralCompletionRatio = 0.5

	fastResponseMinutes = 2.0
	okResponseMinutes   = 6.0
)

// A tenure month is 30 elapsed days, not a calendar month.
const tenureMonth = 30 * 24 * time.Hour

// ScoringContext bundles everything the scorer consumes for one candidate. It is
// assembled per request and discarded; nothing in it is persisted.
type ScoringContext struct {
	Slot              models.AvailabilitySlot
	ProviderCreatedAt time.Time
	ConfirmedBookings int64
	TotalBookings     int64
	AvgResponseMin    float64
}

// ProviderScorer computes a fitness score for a candidate painter given one of
// their slots. Higher is better.
type ProviderScorer interface {
	Score(sc ScoringContext, now time.Time) float64
}

// DefaultProviderScorer implements the production scoring composition:
// participation base + tenure + historical completion ratio + responsiveness.
type DefaultProviderScorer struct{}

func (DefaultProviderScorer) Score(sc ScoringContext, now time.Time) float64 {
	return baseParticipationScore +
		tenureScore(sc.ProviderCreatedAt, now) +
		completionScore(sc.ConfirmedBookings, sc.TotalBookings) +
		responsivenessScore(sc.AvgResponseMin)
}

func tenureScore(createdAt, now time.Time) float64 {
	if createdAt.IsZero() || !createdAt.Before(now) {
		return 0
	}
	months := float64(now.Sub(createdAt)) / float64(tenureMonth)
	score := months * tenurePointsPerMonth
	if score > maxTenureScore {
		return maxTenureScore
	}
	return score
}

// completionScore rewards a high confirmed/total ratio. Painters with no history
// get a neutral ratio instead of zero so new accounts are not shut out.
func completionScore(confirmed, total int64) float64 {
	ratio := neutralCompletionRatio
	if total > 0 {
		ratio = float64(confirmed) / float64(total)
	}
	return ratio * maxCompletionScore
}

// responsivenessScore is a tiered flat bonus on the painter's average response
// time in minutes.
func responsivenessScore(avgMinutes float64) float64 {
	switch {
	case avgMinutes < fastResponseMinutes:
		return 3
	case avgMinutes < okResponseMinutes:
		return 2
	default:
		return 1
	}
}
