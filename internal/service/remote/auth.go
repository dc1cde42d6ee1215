package remote

import (
	"context"
	"errors"
	"net/http"

	"github.com/doulovera/proyx-app/internal/domain"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

// AuthService calls the auth endpoints.
type AuthService struct {
	client *Client
}

// Login exchanges credentials for a user and token. Any 401 from this
// endpoint means the credentials were wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := s.client.send(ctx, "auth", http.MethodPost, "/auth/login", "",
		domain.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, apperrors.InvalidCredentials(apperrors.UserMessage(err))
		}
		return nil, err
	}
	if err := checkAuthResponse(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := s.client.send(ctx, "auth", http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	if err := checkAuthResponse(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// checkAuthResponse rejects a 2xx body that lacks the user or token, since
// it cannot produce a valid session.
func checkAuthResponse(resp *domain.AuthResponse) error {
	if resp.Token == "" || resp.User.ID == "" {
		return apperrors.Decoding(errors.New("auth response without user or token"))
	}
	return nil
}
