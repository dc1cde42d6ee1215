package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

// maxResponseBody bounds how much of a success body is decoded.
const maxResponseBody = 8 << 20

// Call describes one JSON request/response exchange with the backend.
type Call struct {
	Method string
	URL    string
	// Token, when set, is sent as a bearer credential.
	Token string
	// Body is marshalled as the JSON request body when non-nil.
	Body any
	// Service names the remote resource in errors and logs.
	Service string
}

// DoJSON sends call through doer and decodes a 2xx body into out (which may
// be nil). Every failure is classified: NetworkError for transport
// problems and 5xx, DecodingError for malformed bodies, and the backend's
// own kind for 4xx responses.
func DoJSON(ctx context.Context, doer Doer, call Call, out any) error {
	var body io.Reader = http.NoBody
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return apperrors.Internal(fmt.Errorf("marshal %s request: %w", call.Service, err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, body)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("create %s request: %w", call.Service, err))
	}
	req.Header.Set("Accept", "application/json")
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.Token != "" {
		req.Header.Set("Authorization", "Bearer "+call.Token)
	}

	resp, err := doer.Do(ctx, req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.Network(fmt.Errorf("call %s: %w", call.Service, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ParseResponseError(resp, call.Service)
	}
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return apperrors.Decoding(fmt.Errorf("decode %s response: %w", call.Service, err))
	}
	return nil
}
