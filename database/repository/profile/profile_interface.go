package profileRepo

import (
	"context"

	"speakerhub/models"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByUserID retrieves a profile by the owning user's ID. It returns nil, nil when no profile exists.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	// GetIDByUserID returns the profile's internal ID, or "" when no profile exists.
	GetIDByUserID(ctx context.Context, userID string) (string, error)
	// UpdateByUserID applies a partial update and returns the number of matched profiles.
	UpdateByUserID(ctx context.Context, userID string, update models.ProfileUpdate) (int64, error)
}
