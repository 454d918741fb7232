package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProviderScorer(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	scorer := DefaultProviderScorer{}

	tests := []struct {
		name string
		sc   ScoringContext
		want float64
	}{
		{
			// base 10 + tenure 0 + neutral ratio 2.5 + slowest tier 1
			name: "brand new painter with no history",
			sc: ScoringContext{
				ProviderCreatedAt: now,
				AvgResponseMin:    6,
			},
			want: 13.5,
		},
		{
			// base 10 + capped tenure 5 + perfect ratio 5 + fastest tier 3
			name: "long-tenured painter with perfect record",
			sc: ScoringContext{
				ProviderCreatedAt: now.Add(-600 * 24 * time.Hour),
				ConfirmedBookings: 10,
				TotalBookings:     10,
				AvgResponseMin:    1,
			},
			want: 23,
		},
		{
			// base 10 + 60 days = 2 months -> 1.0 + ratio 0.4 -> 2 + mid tier 2
			name: "mid-tenure painter with mixed record",
			sc: ScoringContext{
				ProviderCreatedAt: now.Add(-60 * 24 * time.Hour),
				ConfirmedBookings: 2,
				TotalBookings:     5,
				AvgResponseMin:    3,
			},
			want: 15,
		},
		{
			// All bookings cancelled: ratio 0, not the neutral 0.5.
			name: "painter with only cancelled bookings",
			sc: ScoringContext{
				ProviderCreatedAt: now,
				ConfirmedBookings: 0,
				TotalBookings:     4,
				AvgResponseMin:    10,
			},
			want: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scorer.Score(tt.sc, now), 1e-9)
		})
	}
}

func TestTenureScore(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.InDelta(t, 0, tenureScore(time.Time{}, now), 1e-9, "zero createdAt contributes nothing")
	assert.InDelta(t, 0, tenureScore(now, now), 1e-9)
	assert.InDelta(t, 0.5, tenureScore(now.Add(-30*24*time.Hour), now), 1e-9, "one 30-day month")
	assert.InDelta(t, 5, tenureScore(now.Add(-400*24*time.Hour), now), 1e-9, "capped after ten months")
}

func TestResponsivenessScoreTierBoundaries(t *testing.T) {
	assert.InDelta(t, 3, responsivenessScore(0), 1e-9)
	assert.InDelta(t, 3, responsivenessScore(1.99), 1e-9)
	assert.InDelta(t, 2, responsivenessScore(2), 1e-9, "boundary belongs to the slower tier")
	assert.InDelta(t, 2, responsivenessScore(5.99), 1e-9)
	assert.InDelta(t, 1, responsivenessScore(6), 1e-9)
	assert.InDelta(t, 1, responsivenessScore(120), 1e-9)
}
