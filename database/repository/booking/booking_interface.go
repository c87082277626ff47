package bookingRepo

import (
	"context"

	"speakerhub/models"
)

// BookingRepository defines read access to bookings.
type BookingRepository interface {
	// ListReviewed returns up to limit bookings that carry reviewer notes,
	// joined to their event and the event's organizer profile.
	ListReviewed(ctx context.Context, limit int64) ([]models.ReviewedBooking, error)
}
