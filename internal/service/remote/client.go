// Package remote implements the storefront services over the backend's
// REST/JSON API.
package remote

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/httpclient"
	"github.com/doulovera/proyx-app/pkg/logger"
)

// APIPrefix is prepended to every endpoint path.
const APIPrefix = "/api/v1"

// Client issues JSON calls against one backend base URL. Each call is a
// single attempt; nothing is cached.
type Client struct {
	doer    httpclient.Doer
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a client for baseURL (e.g. "http://localhost:8080").
// Both httpclient.Client and httpclient.CircuitBreakerClient work as doer.
func NewClient(baseURL string, doer httpclient.Doer, logger *slog.Logger) *Client {
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// NewServices returns every service backed by c.
func NewServices(c *Client) service.Services {
	return service.Services{
		Auth:     &AuthService{client: c},
		Profile:  &ProfileService{client: c},
		Events:   &EventsService{client: c},
		Stores:   &StoresService{client: c},
		Products: &ProductsService{client: c},
		Purchase: &PurchaseService{client: c},
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + APIPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, svc, path string, query url.Values, token string, out any) error {
	return c.do(ctx, httpclient.Call{
		Method:  http.MethodGet,
		URL:     c.endpoint(path, query),
		Token:   token,
		Service: svc,
	}, out)
}

func (c *Client) send(ctx context.Context, svc, method, path, token string, body, out any) error {
	return c.do(ctx, httpclient.Call{
		Method:  method,
		URL:     c.endpoint(path, nil),
		Token:   token,
		Body:    body,
		Service: svc,
	}, out)
}

func (c *Client) do(ctx context.Context, call httpclient.Call, out any) error {
	err := httpclient.DoJSON(ctx, c.doer, call, out)
	if err != nil {
		logger.WithContext(ctx, c.logger).WarnContext(ctx, "backend call failed",
			slog.String("service", call.Service),
			slog.String("method", call.Method),
			slog.String("code", apperrors.Code(err)),
			slog.String("error", err.Error()),
		)
	}
	return err
}
