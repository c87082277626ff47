package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"speakerhub/models"
	"speakerhub/services/notification"
	"speakerhub/services/staging"

	"go.uber.org/zap"
)

var (
	toastProfileCompleted = notification.Success("Profile completed!", "Your profile has been set up successfully.")
	toastAccountCompleted = notification.Success("Account setup complete!", "Your account type has been saved.")
	toastUpdateFailed     = notification.Failure("Error", "Failed to update your profile. Please try again.")
	toastSpeakerFailed    = notification.Failure("Error", "Failed to create your speaker profile. Please try again.")
	toastGenericFailure   = notification.Failure("Error", "Something went wrong while completing your profile setup.")
)

// stepError carries the toast to show for a failed step.
type stepError struct {
	toast models.Toast
	err   error
}

func (e *stepError) Error() string { return e.err.Error() }
func (e *stepError) Unwrap() error { return e.err }

func (s *DefaultProfileService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// CompletePendingSignup applies staged signup data for the session's device to
// the user's profile. The speaker slot takes precedence over the generic slot.
// A slot is cleared only after it is applied; on failure it stays staged and
// the next run retries it.
func (s *DefaultProfileService) CompletePendingSignup(ctx context.Context, session Session, notifier notification.Notifier) CompletionResult {
	result := CompletionResult{Branch: BranchNone}
	if session.UserID == "" {
		return result
	}
	logger := s.logger().With(zap.String("userID", session.UserID), zap.String("deviceID", session.DeviceID))

	speakerRaw, hasSpeaker, err := s.readStaged(ctx, session.DeviceID, models.PendingSpeakerKey)
	if err != nil {
		s.report(ctx, logger, session, notifier, err)
		return result
	}
	userRaw, hasUser, err := s.readStaged(ctx, session.DeviceID, models.PendingUserKey)
	if err != nil {
		s.report(ctx, logger, session, notifier, err)
		return result
	}

	switch {
	case hasSpeaker:
		result.Branch = BranchSpeaker
		created, err := s.completeSpeaker(ctx, logger, session.UserID, speakerRaw)
		result.SpeakerCreated = created
		if err != nil {
			s.report(ctx, logger, session, notifier, err)
			return result
		}
		s.clear(ctx, logger, session.DeviceID, models.PendingSpeakerKey)
		result.Completed = true
		s.notify(ctx, logger, session, notifier, toastProfileCompleted)

	case hasUser:
		result.Branch = BranchUser
		if err := s.completeUserType(ctx, logger, session.UserID, userRaw); err != nil {
			s.report(ctx, logger, session, notifier, err)
			return result
		}
		s.clear(ctx, logger, session.DeviceID, models.PendingUserKey)
		result.Completed = true
		s.notify(ctx, logger, session, notifier, toastAccountCompleted)
	}
	return result
}

func (s *DefaultProfileService) readStaged(ctx context.Context, deviceID, key string) (string, bool, error) {
	raw, err := s.Staged.Get(ctx, deviceID, key)
	if errors.Is(err, staging.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return raw, raw != "", nil
}

func decodeStaged(key, raw string) (models.StagedSignup, error) {
	var staged models.StagedSignup
	if err := json.Unmarshal([]byte(raw), &staged); err != nil {
		return staged, &StagedDataError{Key: key, Err: err}
	}
	return staged, nil
}

// completeSpeaker updates the profile and, for speaker account types with an
// intake form, inserts one speaker row. A missing profile row skips the insert.
func (s *DefaultProfileService) completeSpeaker(ctx context.Context, logger *zap.Logger, userID, raw string) (bool, error) {
	staged, err := decodeStaged(models.PendingSpeakerKey, raw)
	if err != nil {
		return false, err
	}

	var update models.ProfileUpdate
	if staged.UserType != "" {
		update.UserType = &staged.UserType
	}
	if form := staged.SpeakerForm; form != nil {
		update.Bio = &form.Bio
		update.Location = &form.Location
	}
	if !update.IsEmpty() {
		matched, err := s.Profiles.UpdateByUserID(ctx, userID, update)
		if err != nil {
			return false, &stepError{toast: toastUpdateFailed, err: err}
		}
		if matched == 0 {
			logger.Warn("CompletePendingSignup: no profile row matched update")
		}
	}

	if !models.IsSpeakerType(staged.UserType) || staged.SpeakerForm == nil {
		return false, nil
	}

	profileID, err := s.Profiles.GetIDByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if profileID == "" {
		logger.Info("CompletePendingSignup: profile row not found, skipping speaker creation")
		return false, nil
	}

	speaker := buildSpeaker(profileID, staged.SpeakerForm)
	if err := s.Speakers.Create(ctx, speaker); err != nil {
		return false, &stepError{toast: toastSpeakerFailed, err: err}
	}
	logger.Debug("CompletePendingSignup: speaker created", zap.String("profileID", profileID), zap.String("speakerID", speaker.ID))
	return true, nil
}

func buildSpeaker(profileID string, form *models.SpeakerForm) *models.Speaker {
	return &models.Speaker{
		ProfileID:         profileID,
		ExperienceLevel:   form.ExperienceLevel,
		HourlyRate:        parseHourlyRate(form.HourlyRate),
		Occupation:        nullable(form.Occupation),
		Company:           nullable(form.Company),
		PrimaryTopic:      nullable(form.PrimaryTopic),
		PortfolioURL:      nullable(form.PortfolioURL),
		SecondaryLocation: form.WorkMode,
		Available:         true,
		Verified:          false,
	}
}

func (s *DefaultProfileService) completeUserType(ctx context.Context, logger *zap.Logger, userID, raw string) error {
	staged, err := decodeStaged(models.PendingUserKey, raw)
	if err != nil {
		return err
	}
	matched, err := s.Profiles.UpdateByUserID(ctx, userID, models.ProfileUpdate{UserType: &staged.UserType})
	if err != nil {
		return &stepError{toast: toastUpdateFailed, err: err}
	}
	if matched == 0 {
		logger.Warn("CompletePendingSignup: no profile row matched user type update")
	}
	return nil
}

func (s *DefaultProfileService) clear(ctx context.Context, logger *zap.Logger, deviceID, key string) {
	if err := s.Staged.Delete(ctx, deviceID, key); err != nil {
		logger.Warn("CompletePendingSignup: failed to clear staged data", zap.String("key", key), zap.Error(err))
	}
}

// report logs err and shows the failing step's toast, or the generic one.
func (s *DefaultProfileService) report(ctx context.Context, logger *zap.Logger, session Session, notifier notification.Notifier, err error) {
	logger.Error("CompletePendingSignup failed", zap.Error(err))
	toast := toastGenericFailure
	var se *stepError
	if errors.As(err, &se) {
		toast = se.toast
	}
	s.notify(ctx, logger, session, notifier, toast)
}

func (s *DefaultProfileService) notify(ctx context.Context, logger *zap.Logger, session Session, notifier notification.Notifier, toast models.Toast) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, session.UserID, toast); err != nil {
		logger.Warn("CompletePendingSignup: failed to deliver notification", zap.String("title", toast.Title), zap.Error(err))
	}
}

// GetProfile returns the user's profile and any speaker records attached to it.
func (s *DefaultProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, []models.Speaker, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrProfileNotFound
	}
	speakers, err := s.Speakers.ListByProfileID(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return p, speakers, nil
}

// SetAvatar stores a new avatar URL on the user's profile and returns the updated profile.
func (s *DefaultProfileService) SetAvatar(ctx context.Context, userID, avatarURL string) (*models.Profile, error) {
	if avatarURL == "" {
		return nil, fmt.Errorf("avatar URL is required")
	}
	matched, err := s.Profiles.UpdateByUserID(ctx, userID, models.ProfileUpdate{AvatarURL: &avatarURL})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrProfileNotFound
	}
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}
