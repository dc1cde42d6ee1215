package memory

import (
	"context"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// ProfileService reads and edits the token owner's profile.
type ProfileService struct {
	b *Backend
}

// Profile returns the user that owns token.
func (s *ProfileService) Profile(_ context.Context, token string) (*domain.UserProfile, error) {
	acc, err := s.b.userFor(token)
	if err != nil {
		return nil, err
	}
	s.b.mu.RLock()
	profile := acc.profile.Clone()
	s.b.mu.RUnlock()
	return &profile, nil
}

// UpdateProfile applies req to the user that owns token.
func (s *ProfileService) UpdateProfile(_ context.Context, token string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	acc, err := s.b.userFor(token)
	if err != nil {
		return nil, err
	}

	s.b.mu.Lock()
	acc.profile = req.Apply(acc.profile)
	profile := acc.profile.Clone()
	s.b.mu.Unlock()
	return &profile, nil
}
