package models

import "time"

type Booking struct {
	ID            string    `bson:"id" json:"id"`
	EventID       string    `bson:"event_id" json:"eventId"`
	SpeakerID     string    `bson:"speaker_id,omitempty" json:"speakerId,omitempty"`
	Status        string    `bson:"status" json:"status"`
	ReviewerNotes *string   `bson:"reviewer_notes" json:"reviewerNotes"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

type Event struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	OrganizerID string    `bson:"organizer_id" json:"organizerId"`
	Date        time.Time `bson:"date" json:"date"`
}

// ReviewedBooking is a booking with reviewer notes joined to its event and
// the event's organizer profile.
type ReviewedBooking struct {
	Booking   `bson:",inline"`
	Event     *Event   `bson:"event,omitempty" json:"event,omitempty"`
	Organizer *Profile `bson:"organizer,omitempty" json:"organizer,omitempty"`
}
