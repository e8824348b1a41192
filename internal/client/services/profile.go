package services

import (
	"context"
	"io"
	"net/http"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
)

// ProfileService manages the user's extended profile. Updates are merged
// field by field over the last fetched state so a partial edit never blanks
// unrelated fields.
type ProfileService struct {
	client  api.Client
	current models.Profile
	loaded  bool
}

func NewProfileService(client api.Client) *ProfileService {
	return &ProfileService{client: client}
}

// Get fetches the profile and caches it as the merge base.
func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	if err := s.client.Do(ctx, http.MethodGet, "/profile", nil, &p); err != nil {
		return models.Profile{}, err
	}
	s.current = p
	s.loaded = true
	return p, nil
}

// Update merges the non-blank fields of update into the current profile and
// persists the result. When no profile was fetched yet, it fetches one first.
func (s *ProfileService) Update(ctx context.Context, update models.Profile) (models.Profile, error) {
	if !s.loaded {
		if _, err := s.Get(ctx); err != nil {
			return models.Profile{}, err
		}
	}

	merged := s.current.Merge(update)

	var saved models.Profile
	if err := s.client.Do(ctx, http.MethodPut, "/profile", merged, &saved); err != nil {
		return models.Profile{}, err
	}
	s.current = saved
	return saved, nil
}

// UploadImage uploads a profile picture and returns its stored location.
func (s *ProfileService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var resp struct {
		ProfileImage string `json:"profileImage"`
	}
	if err := s.client.Upload(ctx, "/profile/image", "profileImage", filename, r, &resp); err != nil {
		return "", err
	}
	s.current.ProfileImage = resp.ProfileImage
	return resp.ProfileImage, nil
}

// Current returns the last known profile state.
func (s *ProfileService) Current() models.Profile { return s.current }

// Reset drops the cached profile. Called on logout.
func (s *ProfileService) Reset() {
	s.current = models.Profile{}
	s.loaded = false
}
