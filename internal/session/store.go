// Package session holds the authenticated user and bearer token for the
// lifetime of the app.
package session

import (
	"log/slog"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/observable"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

// State is one observation of the session. User is nil exactly when Token
// is empty.
type State struct {
	User  *domain.UserProfile
	Token string
}

// Authenticated reports whether the state carries both a user and a token.
func (s State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Store is the single shared session. It changes only through SetSession
// and ClearSession, and every change is one atomic transition.
type Store struct {
	state  *observable.Value[State]
	logger *slog.Logger
}

// NewStore returns an empty, unauthenticated store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		state:  observable.New(State{}),
		logger: logger,
	}
}

// SetSession replaces any existing session. An empty token or user id is
// rejected so the store is never half populated.
func (s *Store) SetSession(user domain.UserProfile, token string) error {
	if token == "" || user.ID == "" {
		return apperrors.Validation("a session needs both a user and a token")
	}

	u := user
	s.state.Set(State{User: &u, Token: token})
	s.logger.Info("session started",
		slog.String("user_id", user.ID),
		slog.String("tier", string(user.MembershipTier)),
	)
	return nil
}

// ClearSession removes the user and token.
func (s *Store) ClearSession() {
	prev := s.state.Get()
	s.state.Set(State{})
	if prev.Authenticated() {
		s.logger.Info("session cleared", slog.String("user_id", prev.User.ID))
	}
}

// Current returns the current state. The returned user is a copy.
func (s *Store) Current() State {
	st := s.state.Get()
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// IsAuthenticated reports whether both a user and a token are present.
func (s *Store) IsAuthenticated() bool {
	return s.state.Get().Authenticated()
}

// Token returns the bearer token, if any.
func (s *Store) Token() (string, bool) {
	st := s.state.Get()
	return st.Token, st.Token != ""
}

// User returns a copy of the current user, if any.
func (s *Store) User() (domain.UserProfile, bool) {
	st := s.state.Get()
	if st.User == nil {
		return domain.UserProfile{}, false
	}
	return *st.User, true
}

// Subscribe delivers the current state and then every transition,
// latest-wins. Call cancel to stop.
func (s *Store) Subscribe() (<-chan State, func()) {
	return s.state.Subscribe()
}
