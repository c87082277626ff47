package speakerRepo

import (
	"context"

	"speakerhub/models"
)

// SpeakerRepository defines methods for speaker data access.
type SpeakerRepository interface {
	// Create inserts a new speaker record.
	Create(ctx context.Context, speaker *models.Speaker) error
	// ListByProfileID returns the speaker records attached to a profile.
	ListByProfileID(ctx context.Context, profileID string) ([]models.Speaker, error)
}
