package notification

import (
	"context"
	"fmt"

	"speakerhub/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Sender is the subset of *messaging.Client used for push delivery.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// ProfileFinder looks up the profile that holds a user's FCM token.
type ProfileFinder interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

// PushNotifier mirrors toasts to the user's device through FCM.
type PushNotifier struct {
	sender   Sender
	profiles ProfileFinder
	logger   *zap.Logger
}

func NewPushNotifier(sender Sender, profiles ProfileFinder, logger *zap.Logger) *PushNotifier {
	return &PushNotifier{sender: sender, profiles: profiles, logger: logger}
}

// Notify sends the toast as a push. Users without a profile or FCM token are skipped.
func (p *PushNotifier) Notify(ctx context.Context, userID string, toast models.Toast) error {
	profile, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("push notify: could not load profile for user %s: %w", userID, err)
	}
	if profile == nil || profile.FCMToken == "" {
		p.logger.Debug("push notify: no FCM token, skipping", zap.String("userID", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: profile.FCMToken,
		Notification: &messaging.Notification{
			Title: toast.Title,
			Body:  toast.Description,
		},
		Data: map[string]string{
			"variant": toast.Variant,
			"role":    "user",
		},
	}

	id, err := p.sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("push notify: failed to send FCM message: %w", err)
	}
	p.logger.Debug("push notify: sent", zap.String("userID", userID), zap.String("messageID", id))
	return nil
}
