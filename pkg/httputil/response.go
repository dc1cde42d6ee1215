package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// ErrorBody is the error envelope written by the backend:
// {"error":{"code":"...","message":"...","fields":{...}}}.
type ErrorBody struct {
	Error ErrorResponse `json:"error"`
}

// ErrorResponse represents an error in the standard response format.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, the error is logged but headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the error envelope for err. Classified errors keep their
// code, message and field details; anything else is logged and reported as
// an internal error. It prefers the request-scoped logger from context (set
// by the RequestLogger middleware) over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		l = fallback
	}

	requestID := logger.CorrelationIDFromContext(r.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != apperrors.CodeInternal {
		status := appErr.Status
		if status == 0 {
			status = apperrors.HTTPStatus(err)
		}
		WriteJSON(w, status, ErrorBody{Error: ErrorResponse{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Fields:    appErr.Fields,
			RequestID: requestID,
		}})
		return
	}

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteValidationError(w, r, err)
		return
	}

	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: ErrorResponse{
		Code:      apperrors.CodeInternal,
		Message:   "an internal error occurred",
		RequestID: requestID,
	}})
}

// WriteValidationError writes a standardized validation error response.
// It handles ValidationError from the validator package and returns field-level errors.
func WriteValidationError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := logger.CorrelationIDFromContext(r.Context())

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorBody{Error: ErrorResponse{
			Code:      apperrors.CodeValidation,
			Message:   "request validation failed",
			Fields:    valErr.Fields(),
			RequestID: requestID,
		}})
		return
	}

	WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: ErrorResponse{
		Code:      apperrors.CodeValidation,
		Message:   err.Error(),
		RequestID: requestID,
	}})
}
