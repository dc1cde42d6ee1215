package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors, one per failure kind surfaced to view models.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrNetwork            = errors.New("network error")
	ErrDecoding           = errors.New("decoding error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("resource not found")
	ErrInternal           = errors.New("internal error")
)

// Error codes as they travel in the JSON error envelope.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeValidation         = "VALIDATION_ERROR"
	CodeConflict           = "CONFLICT"
	CodeNetwork            = "NETWORK_ERROR"
	CodeDecoding           = "DECODING_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is a classified failure. Message is human readable and is shown
// verbatim in error banners.
type AppError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Status  int               `json:"-"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil && !isSentinel(e.Err) {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel of its kind even
// when Err wraps a lower-level cause.
func (e *AppError) Is(target error) bool {
	if s := sentinelFor(e.Code); s != nil {
		return s == target
	}
	return false
}

// InvalidCredentials creates a 401 login failure.
func InvalidCredentials(message string) *AppError {
	if message == "" {
		message = "invalid email or password"
	}
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrInvalidCredentials,
	}
}

// Validation creates a 400 error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrValidation,
	}
}

// ValidationFields creates a 400 error with per-field messages.
func ValidationFields(message string, fields map[string]string) *AppError {
	e := Validation(message)
	e.Fields = fields
	return e
}

// Conflict creates a 409 error.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  http.StatusConflict,
		Err:     ErrConflict,
	}
}

// Network wraps a transport failure.
func Network(err error) *AppError {
	return &AppError{
		Code:    CodeNetwork,
		Message: "could not reach the server, check your connection",
		Status:  http.StatusServiceUnavailable,
		Err:     wrapSentinel(ErrNetwork, err),
	}
}

// NetworkMessage creates a network error with a custom message.
func NetworkMessage(message string) *AppError {
	return &AppError{
		Code:    CodeNetwork,
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     ErrNetwork,
	}
}

// Decoding wraps a malformed response body.
func Decoding(err error) *AppError {
	return &AppError{
		Code:    CodeDecoding,
		Message: "received an unexpected response from the server",
		Status:  http.StatusBadGateway,
		Err:     wrapSentinel(ErrDecoding, err),
	}
}

// Unauthorized creates a 401 error for a missing or expired session.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthorized,
	}
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     wrapSentinel(ErrInternal, err),
	}
}

// FromCode rebuilds a classified error from a wire error code. Unknown codes
// become internal errors that keep the code and message.
func FromCode(code, message string, status int) *AppError {
	sentinel := sentinelFor(code)
	if sentinel == nil {
		return &AppError{Code: code, Message: message, Status: status, Err: ErrInternal}
	}
	if status == 0 {
		status = HTTPStatus(sentinel)
	}
	return &AppError{Code: code, Message: message, Status: status, Err: sentinel}
}

// Code returns the taxonomy code of err, or CodeInternal when err is not
// classified.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrNetwork):
		return CodeNetwork
	case errors.Is(err, ErrDecoding):
		return CodeDecoding
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}

// UserMessage returns the text a screen should display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "something went wrong, please try again"
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}

	switch Code(err) {
	case CodeInvalidCredentials, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNetwork:
		return http.StatusServiceUnavailable
	case CodeDecoding:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func sentinelFor(code string) error {
	switch code {
	case CodeInvalidCredentials:
		return ErrInvalidCredentials
	case CodeValidation:
		return ErrValidation
	case CodeConflict:
		return ErrConflict
	case CodeNetwork:
		return ErrNetwork
	case CodeDecoding:
		return ErrDecoding
	case CodeUnauthorized:
		return ErrUnauthorized
	case CodeNotFound:
		return ErrNotFound
	case CodeInternal:
		return ErrInternal
	}
	return nil
}

func isSentinel(err error) bool {
	switch err {
	case ErrInvalidCredentials, ErrValidation, ErrConflict, ErrNetwork,
		ErrDecoding, ErrUnauthorized, ErrNotFound, ErrInternal:
		return true
	}
	return false
}

func wrapSentinel(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
