package profile

import (
	"context"
	"errors"
	"sync"

	"speakerhub/models"
	"speakerhub/services/staging"
)

// fakeProfileRepo is a test-only ProfileRepository keyed by user ID.
type fakeProfileRepo struct {
	mu        sync.Mutex
	profiles  map[string]*models.Profile
	updates   []models.ProfileUpdate
	lookups   int
	updateErr error
	lookupErr error
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
	for _, p := range profiles {
		r.profiles[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) GetIDByUserID(_ context.Context, userID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.lookupErr != nil {
		return "", r.lookupErr
	}
	if p, ok := r.profiles[userID]; ok {
		return p.ID, nil
	}
	return "", nil
}

func (r *fakeProfileRepo) UpdateByUserID(_ context.Context, userID string, u models.ProfileUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	r.updates = append(r.updates, u)
	p, ok := r.profiles[userID]
	if !ok {
		return 0, nil
	}
	if u.UserType != nil {
		p.UserType = *u.UserType
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.AvatarURL != nil {
		p.AvatarURL = *u.AvatarURL
	}
	return 1, nil
}

// fakeSpeakerRepo is a test-only SpeakerRepository.
type fakeSpeakerRepo struct {
	mu        sync.Mutex
	created   []models.Speaker
	createErr error
}

func (r *fakeSpeakerRepo) Create(_ context.Context, s *models.Speaker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, *s)
	return nil
}

func (r *fakeSpeakerRepo) ListByProfileID(_ context.Context, profileID string) ([]models.Speaker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Speaker
	for _, s := range r.created {
		if s.ProfileID == profileID {
			out = append(out, s)
		}
	}
	return out, nil
}

// brokenStore fails every read.
type brokenStore struct {
	staging.Store
}

func (brokenStore) Get(context.Context, string, string) (string, error) {
	return "", errors.New("redis unavailable")
}
