package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Sentinel error identity ---

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidCredentials, ErrValidation, ErrConflict, ErrNetwork,
		ErrDecoding, ErrUnauthorized, ErrNotFound, ErrInternal,
	}

	for i := 0; i < len(sentinels); i++ {
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotEqual(t, sentinels[i], sentinels[j],
				"sentinels %d and %d should be distinct", i, j)
		}
	}
}

// --- AppError behavior ---

func TestAppError_ErrorString_WithCause(t *testing.T) {
	appErr := Network(fmt.Errorf("dial tcp: connection refused"))
	assert.Contains(t, appErr.Error(), CodeNetwork)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_ErrorString_SentinelOnly(t *testing.T) {
	appErr := Conflict("email already registered")
	assert.Equal(t, "CONFLICT: email already registered", appErr.Error())
}

func TestAppError_IsMatchesKind(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid credentials", InvalidCredentials(""), ErrInvalidCredentials},
		{"validation", Validation("bad"), ErrValidation},
		{"conflict", Conflict("dup"), ErrConflict},
		{"network", Network(errors.New("boom")), ErrNetwork},
		{"decoding", Decoding(errors.New("eof")), ErrDecoding},
		{"unauthorized", Unauthorized("expired"), ErrUnauthorized},
		{"not found", NotFound("event", "e1"), ErrNotFound},
		{"internal", Internal(errors.New("x")), ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.sentinel))
			wrapped := fmt.Errorf("load home: %w", tc.err)
			assert.True(t, errors.Is(wrapped, tc.sentinel))
		})
	}
}

func TestNetwork_PreservesCause(t *testing.T) {
	err := Network(context.DeadlineExceeded)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestInvalidCredentials_DefaultMessage(t *testing.T) {
	assert.Equal(t, "invalid email or password", InvalidCredentials("").Message)
	assert.Equal(t, "nope", InvalidCredentials("nope").Message)
}

func TestValidationFields(t *testing.T) {
	err := ValidationFields("request validation failed", map[string]string{"email": "is required"})
	assert.Equal(t, "is required", err.Fields["email"])
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

// --- Classification ---

func TestCode(t *testing.T) {
	assert.Equal(t, CodeConflict, Code(Conflict("x")))
	assert.Equal(t, CodeNetwork, Code(fmt.Errorf("fetch: %w", ErrNetwork)))
	assert.Equal(t, CodeInternal, Code(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "email already registered", UserMessage(fmt.Errorf("register: %w", Conflict("email already registered"))))
	assert.Equal(t, "something went wrong, please try again", UserMessage(errors.New("raw")))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{InvalidCredentials(""), http.StatusUnauthorized},
		{Validation("x"), http.StatusBadRequest},
		{Conflict("x"), http.StatusConflict},
		{NotFound("store", "1"), http.StatusNotFound},
		{Unauthorized("x"), http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", ErrConflict), http.StatusConflict},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.status, HTTPStatus(tc.err), "error: %v", tc.err)
	}
}
