package handlers

import (
	"context"
	"io"
	"sync"

	"speakerhub/models"
	"speakerhub/services/avatar"
	"speakerhub/services/notification"
	"speakerhub/services/profile"
)

type fakeCompletion struct {
	session profile.Session
	toasts  []models.Toast
	result  profile.CompletionResult
}

func (f *fakeCompletion) CompletePendingSignup(ctx context.Context, session profile.Session, notifier notification.Notifier) profile.CompletionResult {
	f.session = session
	for _, t := range f.toasts {
		_ = notifier.Notify(ctx, session.UserID, t)
	}
	return f.result
}

type fakeProfiles struct {
	profile    *models.Profile
	speakers   []models.Speaker
	err        error
	avatarURLs []string
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ string) (*models.Profile, []models.Speaker, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.profile, f.speakers, nil
}

func (f *fakeProfiles) SetAvatar(_ context.Context, _ string, avatarURL string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.avatarURLs = append(f.avatarURLs, avatarURL)
	f.profile.AvatarURL = avatarURL
	return f.profile, nil
}

type fakeStorage struct {
	url       string
	uploadErr error
	uploaded  []byte
	folder    string
	publicID  string
	deleted   []string
}

func (f *fakeStorage) UploadAvatar(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploaded, f.folder, f.publicID = data, folder, publicID
	return f.url, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakePublisher struct {
	mu      sync.Mutex
	updates []avatar.Update
}

func (f *fakePublisher) PublishUpdate(_ context.Context, u avatar.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, u)
	return nil
}

type recordingNotifier struct {
	toasts []models.Toast
}

func (r *recordingNotifier) Notify(_ context.Context, _ string, toast models.Toast) error {
	r.toasts = append(r.toasts, toast)
	return nil
}

// failingStore fails every operation with an internal error.
type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string, string) (string, error) { return "", f.err }
func (f failingStore) Set(context.Context, string, string, string) error  { return f.err }
func (f failingStore) Delete(context.Context, string, string) error       { return f.err }
