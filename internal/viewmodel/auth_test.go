package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service/memory"
	"github.com/doulovera/proyx-app/internal/session"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
)

var demoUser = domain.UserProfile{ID: "u-1", Email: "maria@proyectox.com", FirstName: "María", MembershipTier: domain.TierGold}

func TestLogin_AdminAgainstMemoryBackend(t *testing.T) {
	backend, err := memory.New(memory.Config{JWTSecret: "viewmodel-test-secret-0123456789"}, logger.Discard())
	require.NoError(t, err)
	store := session.NewStore(logger.Discard())
	vm := NewLoginViewModel(backend.Services().Auth, store, logger.Discard())

	require.NoError(t, vm.Login(context.Background(), "admin@proyectox.com", "password123"))

	require.True(t, store.IsAuthenticated())
	user, _ := store.User()
	assert.Equal(t, domain.TierPlatinum, user.MembershipTier)
	assert.Equal(t, PhaseLoaded, vm.State().Phase)

	store.ClearSession()
	assert.False(t, store.IsAuthenticated())
}

func TestLogin_SuccessSetsSession(t *testing.T) {
	auth := new(mockAuth)
	auth.On("Login", mock.Anything, "maria@proyectox.com", "password123").
		Return(&domain.AuthResponse{User: demoUser, Token: "tok-1"}, nil).Once()
	store := session.NewStore(logger.Discard())
	vm := NewLoginViewModel(auth, store, logger.Discard())

	require.NoError(t, vm.Login(context.Background(), "  maria@proyectox.com ", "password123"))

	st := store.Current()
	require.True(t, st.Authenticated())
	assert.Equal(t, "tok-1", st.Token)
	assert.Equal(t, demoUser, *st.User)
	auth.AssertExpectations(t)
}

func TestLogin_InvalidCredentialsLeavesSessionEmpty(t *testing.T) {
	auth := new(mockAuth)
	auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.InvalidCredentials(""))
	store := session.NewStore(logger.Discard())
	vm := NewLoginViewModel(auth, store, logger.Discard())

	err := vm.Login(context.Background(), "maria@proyectox.com", "wrong")

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.False(t, store.IsAuthenticated())
	st := vm.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "invalid email or password", st.ErrorMessage)
}

func TestLogin_FieldValidationSkipsService(t *testing.T) {
	auth := new(mockAuth)
	vm := NewLoginViewModel(auth, session.NewStore(logger.Discard()), logger.Discard())

	err := vm.Login(context.Background(), "not-an-email", "")

	require.ErrorIs(t, err, apperrors.ErrValidation)
	fields := FieldErrors(err)
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "is required", fields["password"])
	assert.Equal(t, PhaseFailed, vm.State().Phase)
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_IncompleteAuthResponseIsRejected(t *testing.T) {
	auth := new(mockAuth)
	auth.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.AuthResponse{User: demoUser}, nil)
	store := session.NewStore(logger.Discard())
	vm := NewLoginViewModel(auth, store, logger.Discard())

	require.Error(t, vm.Login(context.Background(), "maria@proyectox.com", "password123"))
	assert.False(t, store.IsAuthenticated())
}

func validSignUp() domain.RegisterRequest {
	return domain.RegisterRequest{
		Email: "nuevo@proyectox.com", Password: "supersecret", ConfirmPassword: "supersecret",
		FirstName: "Luis", LastName: "Pérez",
	}
}

func TestSignUp_SuccessSetsSession(t *testing.T) {
	auth := new(mockAuth)
	user := domain.UserProfile{ID: "u-2", Email: "nuevo@proyectox.com", MembershipTier: domain.TierSilver}
	auth.On("Register", mock.Anything, validSignUp()).Return(&domain.AuthResponse{User: user, Token: "tok-2"}, nil).Once()
	store := session.NewStore(logger.Discard())
	vm := NewSignUpViewModel(auth, store, logger.Discard())

	require.NoError(t, vm.SignUp(context.Background(), validSignUp()))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, user, vm.State().Data)
}

func TestSignUp_Conflict(t *testing.T) {
	auth := new(mockAuth)
	auth.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.Conflict("an account with this email already exists"))
	store := session.NewStore(logger.Discard())
	vm := NewSignUpViewModel(auth, store, logger.Discard())

	err := vm.SignUp(context.Background(), validSignUp())

	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "an account with this email already exists", vm.State().ErrorMessage)
	assert.False(t, store.IsAuthenticated())
}

func TestSignUp_PasswordMismatch(t *testing.T) {
	auth := new(mockAuth)
	vm := NewSignUpViewModel(auth, session.NewStore(logger.Discard()), logger.Discard())

	req := validSignUp()
	req.ConfirmPassword = "other-secret"
	err := vm.SignUp(context.Background(), req)

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, FieldErrors(err), "confirm_password")
	auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestFieldErrors_NonValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(apperrors.Network(nil)))
}
