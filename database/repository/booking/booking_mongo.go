package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"speakerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// reviewedPipeline selects the newest bookings with reviewer notes and joins
// bookings.event_id -> events.id -> profiles.id (organizer).
func reviewedPipeline(limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reviewer_notes": bson.M{"$ne": nil}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "events",
			"localField":   "event_id",
			"foreignField": "id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$event", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "event.organizer_id",
			"foreignField": "id",
			"as":           "organizer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$organizer", "preserveNullAndEmptyArrays": true}}},
	}
}

// ListReviewed runs the reviewed-bookings aggregation.
func (r *MongoBookingRepo) ListReviewed(ctx context.Context, limit int64) ([]models.ReviewedBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, reviewedPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reviewed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ReviewedBooking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reviewed bookings: %w", err)
	}
	return out, nil
}
