package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

// ErrorEnvelope mirrors the error body returned by the backend:
// {"error":{"code":"...","message":"...","fields":{...}}}.
type ErrorEnvelope struct {
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	} `json:"error"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and
// translates it into a classified AppError. A recognised error code wins
// over the status code; the backend's message is kept verbatim because it
// ends up in the UI.
//
// The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperrors.Network(fmt.Errorf("%s returned status %d (failed to read body: %w)", serviceName, resp.StatusCode, err))
	}

	var envelope ErrorEnvelope
	if json.Unmarshal(bodyBytes, &envelope) == nil && envelope.Error != nil {
		return mapBackendError(resp.StatusCode, envelope.Error.Code, envelope.Error.Message, envelope.Error.Fields)
	}

	return mapBackendError(resp.StatusCode, "", "", nil)
}

func mapBackendError(status int, code, message string, fields map[string]string) error {
	if message == "" {
		message = defaultMessage(status)
	}

	switch code {
	case apperrors.CodeInvalidCredentials, apperrors.CodeValidation, apperrors.CodeConflict,
		apperrors.CodeUnauthorized, apperrors.CodeNotFound:
		appErr := apperrors.FromCode(code, message, status)
		appErr.Fields = fields
		return appErr
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperrors.ValidationFields(message, fields)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.Unauthorized(message)
	case status == http.StatusNotFound:
		return apperrors.FromCode(apperrors.CodeNotFound, message, status)
	case status == http.StatusConflict:
		return apperrors.Conflict(message)
	case status >= 500:
		appErr := apperrors.NetworkMessage(message)
		appErr.Status = status
		return appErr
	default:
		if code == "" {
			code = fmt.Sprintf("HTTP_%d", status)
		}
		return apperrors.FromCode(code, message, status)
	}
}

func defaultMessage(status int) string {
	switch {
	case status >= 500:
		return "the service is unavailable right now, please try again later"
	case status == http.StatusUnauthorized:
		return "your session has expired, please sign in again"
	case status == http.StatusNotFound:
		return "the requested item could not be found"
	default:
		return fmt.Sprintf("request failed (%d %s)", status, http.StatusText(status))
	}
}
