// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"paintbook/models"
)

func (r *mongoSlotRepo) FindCoveringFreeSlots(ctx context.Context, start, end time.Time) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// A covering slot fully contains the requested interval.
	filter := bson.M{
		"reserved": false,
		"start":    bson.M{"$lte": start},
		"end":      bson.M{"$gte": end},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("covering slot query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding covering slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) FindFreeSlotsInWindow(ctx context.Context, windowStart, windowEnd time.Time, minDuration time.Duration) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// $subtract on two date fields yields milliseconds.
	filter := bson.M{
		"reserved": false,
		"start":    bson.M{"$gte": windowStart},
		"end":      bson.M{"$lte": windowEnd},
		"$expr": bson.M{
			"$gte": bson.A{
				bson.M{"$subtract": bson.A{"$end", "$start"}},
				minDuration.Milliseconds(),
			},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("window slot query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding window slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) FindOverlapping(ctx context.Context, providerID string, start, end time.Time) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Two intervals overlap when each starts before the other ends.
	filter := bson.M{
		"providerId": providerID,
		"start":      bson.M{"$lt": end},
		"end":        bson.M{"$gt": start},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("overlap query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding overlapping slots: %w", err)
	}
	return slots, nil
}
