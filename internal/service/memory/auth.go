package memory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/doulovera/proyx-app/internal/auth"
	"github.com/doulovera/proyx-app/internal/domain"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// AuthService signs users in against the seeded accounts.
type AuthService struct {
	b *Backend
}

// Login checks the password and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	if err := validator.Check(domain.LoginRequest{Email: strings.TrimSpace(email), Password: password}); err != nil {
		return nil, err
	}

	s.b.mu.RLock()
	var acc *account
	if id, ok := s.b.emails[normalizeEmail(email)]; ok {
		acc = s.b.accounts[id]
	}
	var profile domain.UserProfile
	var hash string
	if acc != nil {
		profile, hash = acc.profile.Clone(), acc.passwordHash
	}
	s.b.mu.RUnlock()

	if acc == nil || !auth.CheckPassword(hash, password) {
		s.b.logger.InfoContext(ctx, "login rejected", slog.String("email", normalizeEmail(email)))
		return nil, apperrors.InvalidCredentials("")
	}
	return s.issue(profile)
}

// Register creates a silver-tier account and signs it in.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	since := s.b.now().UTC()
	profile := domain.UserProfile{
		ID:             uuid.NewString(),
		Email:          normalizeEmail(req.Email),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Phone:          req.Phone,
		MembershipTier: domain.TierSilver,
		MemberSince:    &since,
	}
	if _, err := s.b.addAccount(profile, req.Password); err != nil {
		return nil, err
	}

	s.b.logger.InfoContext(ctx, "account registered", slog.String("user_id", profile.ID))
	return s.issue(profile)
}

func (s *AuthService) issue(profile domain.UserProfile) (*domain.AuthResponse, error) {
	token, err := s.b.tokens.Issue(profile)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &domain.AuthResponse{User: profile, Token: token}, nil
}
