package viewmodel

import (
	"context"
	"log/slog"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/internal/session"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// ProfileViewModel shows and edits the signed-in user.
type ProfileViewModel struct {
	*Loadable[domain.UserProfile]
	profiles service.ProfileService
	session  *session.Store
	logger   *slog.Logger
}

// NewProfileViewModel creates an idle profile view model.
func NewProfileViewModel(profiles service.ProfileService, store *session.Store, logger *slog.Logger) *ProfileViewModel {
	return &ProfileViewModel{
		Loadable: NewLoadable[domain.UserProfile](),
		profiles: profiles,
		session:  store,
		logger:   logger,
	}
}

// Restore fetches the profile for a previously issued token and starts a
// session with it. Any failure clears the session so stale credentials are
// never kept.
func (vm *ProfileViewModel) Restore(ctx context.Context, token string) error {
	err := vm.Run(ctx, func(ctx context.Context) (domain.UserProfile, error) {
		if token == "" {
			return domain.UserProfile{}, apperrors.Unauthorized("sign in to see your profile")
		}
		user, err := vm.profiles.Profile(ctx, token)
		if err != nil {
			return domain.UserProfile{}, err
		}
		if err := vm.session.SetSession(*user, token); err != nil {
			return domain.UserProfile{}, err
		}
		return *user, nil
	})
	if err != nil {
		logger.WithContext(ctx, vm.logger).WarnContext(ctx, "profile restore failed, clearing session",
			slog.String("code", apperrors.Code(err)))
		vm.session.ClearSession()
	}
	return err
}

// Refresh re-fetches the profile with the current token. It fails the same
// way Restore does.
func (vm *ProfileViewModel) Refresh(ctx context.Context) error {
	token, _ := vm.session.Token()
	return vm.Restore(ctx, token)
}

// Update saves profile edits and re-sets the session with the returned
// user and the unchanged token. A failed update leaves the session as is.
func (vm *ProfileViewModel) Update(ctx context.Context, req domain.UpdateProfileRequest) error {
	token, ok := vm.session.Token()
	if !ok {
		err := apperrors.Unauthorized("sign in to edit your profile")
		vm.Fail(err)
		return err
	}
	if err := validator.Check(req); err != nil {
		vm.Fail(err)
		return err
	}

	return vm.Run(ctx, func(ctx context.Context) (domain.UserProfile, error) {
		user, err := vm.profiles.UpdateProfile(ctx, token, req)
		if err != nil {
			logger.WithContext(ctx, vm.logger).WarnContext(ctx, "profile update failed", slog.String("code", apperrors.Code(err)))
			return domain.UserProfile{}, err
		}
		if err := vm.session.SetSession(*user, token); err != nil {
			return domain.UserProfile{}, err
		}
		return *user, nil
	})
}

// Logout ends the session and forgets the loaded profile.
func (vm *ProfileViewModel) Logout() {
	vm.session.ClearSession()
	vm.Reset()
}
