package profile

import (
	"context"

	profileRepo "speakerhub/database/repository/profile"
	speakerRepo "speakerhub/database/repository/speaker"
	"speakerhub/models"
	"speakerhub/services/notification"
	"speakerhub/services/staging"

	"go.uber.org/zap"
)

// Session identifies the authenticated user and the device whose staged data is consumed.
type Session struct {
	UserID   string
	DeviceID string
}

// Branch names which staged slot a completion run processed.
type Branch string

const (
	BranchNone    Branch = "none"
	BranchSpeaker Branch = "speaker"
	BranchUser    Branch = "user"
)

// CompletionResult summarizes a completion run.
type CompletionResult struct {
	Branch         Branch `json:"branch"`
	Completed      bool   `json:"completed"`
	SpeakerCreated bool   `json:"speakerCreated"`
}

// CompletionService finalizes staged signup data once a user is authenticated.
type CompletionService interface {
	// CompletePendingSignup never returns an error; failures are logged and
	// reported to notifier as toasts.
	CompletePendingSignup(ctx context.Context, session Session, notifier notification.Notifier) CompletionResult
}

// ProfileService exposes profile reads and avatar changes.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, []models.Speaker, error)
	SetAvatar(ctx context.Context, userID, avatarURL string) (*models.Profile, error)
}

// DefaultProfileService is the production implementation of both services.
type DefaultProfileService struct {
	Profiles profileRepo.ProfileRepository
	Speakers speakerRepo.SpeakerRepository
	Staged   staging.Store
	Logger   *zap.Logger
}
