// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"paintbook/models"
)

func (r *mongoBookingRepo) FindUserBookings(ctx context.Context, userID string, filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := bson.M{
		"$or": bson.A{
			bson.M{"customerId": userID},
			bson.M{"providerId": userID},
		},
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	startRange := bson.M{}
	if !filter.StartDate.IsZero() {
		startRange["$gte"] = filter.StartDate
	}
	if !filter.EndDate.IsZero() {
		startRange["$lte"] = filter.EndDate
	}
	if len(startRange) > 0 {
		query["start"] = startRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CountByProvider returns the painter's total and confirmed booking counts. The
// pair feeds the scorer's completion-ratio term.
func (r *mongoBookingRepo) CountByProvider(ctx context.Context, providerID string) (int64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count bookings for provider %s: %w", providerID, err)
	}
	confirmed, err := r.coll.CountDocuments(ctx, bson.M{
		"providerId": providerID,
		"status":     models.BookingStatusConfirmed,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count confirmed bookings for provider %s: %w", providerID, err)
	}
	return total, confirmed, nil
}
