// File: database/repository/slot/reserve.go
package slotRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Reserve flips a free slot to reserved in a single compare-and-swap update.
// The reserved flag in the filter is the compare; the version bump records the
// mutation. Of two concurrent callers exactly one matches the document, so the
// loser gets ErrSlotConflict instead of silently overwriting.
func (r *mongoSlotRepo) Reserve(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": slotID, "reserved": false}
	update := bson.M{
		"$set": bson.M{"reserved": true},
		"$inc": bson.M{"version": 1},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return r.classifyMiss(ctx, slotID)
	}
	return nil
}

// Release flips a reserved slot back to free with the same CAS shape.
func (r *mongoSlotRepo) Release(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": slotID, "reserved": true}
	update := bson.M{
		"$set": bson.M{"reserved": false},
		"$inc": bson.M{"version": 1},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return r.classifyMiss(ctx, slotID)
	}
	return nil
}

// classifyMiss distinguishes a missing slot from one whose reserved flag did not
// match the CAS filter.
func (r *mongoSlotRepo) classifyMiss(ctx context.Context, slotID string) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": slotID})
	if err != nil {
		return fmt.Errorf("failed to classify reservation miss for slot %s: %w", slotID, err)
	}
	if count == 0 {
		return ErrSlotNotFound
	}
	return ErrSlotConflict
}
