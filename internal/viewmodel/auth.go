package viewmodel

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/internal/session"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// LoginViewModel drives the sign-in form.
type LoginViewModel struct {
	*Loadable[domain.UserProfile]
	auth    service.AuthService
	session *session.Store
	logger  *slog.Logger
}

// NewLoginViewModel creates an idle login view model.
func NewLoginViewModel(auth service.AuthService, store *session.Store, logger *slog.Logger) *LoginViewModel {
	return &LoginViewModel{
		Loadable: NewLoadable[domain.UserProfile](),
		auth:     auth,
		session:  store,
		logger:   logger,
	}
}

// Login validates the form, signs in and starts the session. The session is
// set once, and only when the service succeeds.
func (vm *LoginViewModel) Login(ctx context.Context, email, password string) error {
	req := domain.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := validator.Check(req); err != nil {
		vm.Fail(err)
		return err
	}

	return vm.Run(ctx, func(ctx context.Context) (domain.UserProfile, error) {
		resp, err := vm.auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			logger.WithContext(ctx, vm.logger).WarnContext(ctx, "login failed", slog.String("code", apperrors.Code(err)))
			return domain.UserProfile{}, err
		}
		if err := vm.session.SetSession(resp.User, resp.Token); err != nil {
			return domain.UserProfile{}, err
		}
		return resp.User, nil
	})
}

// SignUpViewModel drives the registration form.
type SignUpViewModel struct {
	*Loadable[domain.UserProfile]
	auth    service.AuthService
	session *session.Store
	logger  *slog.Logger
}

// NewSignUpViewModel creates an idle sign-up view model.
func NewSignUpViewModel(auth service.AuthService, store *session.Store, logger *slog.Logger) *SignUpViewModel {
	return &SignUpViewModel{
		Loadable: NewLoadable[domain.UserProfile](),
		auth:     auth,
		session:  store,
		logger:   logger,
	}
}

// SignUp validates the form, registers and starts the session.
func (vm *SignUpViewModel) SignUp(ctx context.Context, req domain.RegisterRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if err := validator.Check(req); err != nil {
		vm.Fail(err)
		return err
	}

	return vm.Run(ctx, func(ctx context.Context) (domain.UserProfile, error) {
		resp, err := vm.auth.Register(ctx, req)
		if err != nil {
			logger.WithContext(ctx, vm.logger).WarnContext(ctx, "sign up failed", slog.String("code", apperrors.Code(err)))
			return domain.UserProfile{}, err
		}
		if err := vm.session.SetSession(resp.User, resp.Token); err != nil {
			return domain.UserProfile{}, err
		}
		return resp.User, nil
	})
}

// FieldErrors returns the per-field messages of the last failure, if it was
// a validation error.
func FieldErrors(err error) map[string]string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
