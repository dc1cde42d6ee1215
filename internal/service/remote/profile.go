package remote

import (
	"context"
	"net/http"

	"github.com/doulovera/proyx-app/internal/domain"
)

// ProfileService calls the current-user endpoints.
type ProfileService struct {
	client *Client
}

// Profile fetches the user that owns token.
func (s *ProfileService) Profile(ctx context.Context, token string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	if err := s.client.get(ctx, "profile", "/users/me", nil, token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies req to the user that owns token.
func (s *ProfileService) UpdateProfile(ctx context.Context, token string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	var user domain.UserProfile
	if err := s.client.send(ctx, "profile", http.MethodPut, "/users/me", token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
