package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/doulovera/proyx-app/internal/config"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/internal/service/memory"
	"github.com/doulovera/proyx-app/internal/service/remote"
	"github.com/doulovera/proyx-app/pkg/httpclient"
)

// clientName labels the outbound HTTP client in metrics, spans and the
// circuit breaker.
const clientName = "proyx-api"

// buildServices selects the data source named by cfg.Backend. The memory
// backend is returned as well so callers can register its health check.
func buildServices(cfg *config.Config, logger *slog.Logger) (service.Services, *memory.Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		backend, err := memory.New(memory.Config{
			JWTSecret:    cfg.JWTSecret,
			TokenExpiry:  cfg.TokenExpiry,
			PaymentDelay: cfg.PaymentDelay,
		}, logger)
		if err != nil {
			return service.Services{}, nil, fmt.Errorf("create memory backend: %w", err)
		}
		logger.Info("using in-memory backend", slog.Duration("payment_delay", cfg.PaymentDelay))
		return backend.Services(), backend, nil

	case config.BackendRemote:
		return remote.NewServices(remote.NewClient(cfg.APIBaseURL, newDoer(cfg, logger), logger)), nil, nil
	}
	return service.Services{}, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// newDoer builds the HTTP client for the remote backend, wrapped in a
// circuit breaker when enabled.
func newDoer(cfg *config.Config, logger *slog.Logger) httpclient.Doer {
	clientCfg := httpclient.DefaultConfig(clientName)
	clientCfg.Timeout = cfg.HTTPTimeout
	base := httpclient.New(clientCfg)

	if !cfg.CBEnabled {
		logger.Info("using remote backend", slog.String("base_url", cfg.APIBaseURL))
		return base
	}

	cbCfg := httpclient.CircuitBreakerConfig{
		Name:         clientName,
		MaxRequests:  cfg.CBMaxRequests,
		Interval:     time.Duration(cfg.CBInterval) * time.Second,
		Timeout:      time.Duration(cfg.CBTimeout) * time.Second,
		FailureRatio: cfg.CBFailureRatio,
		MinRequests:  cfg.CBMinRequests,
	}
	logger.Info("using remote backend with circuit breaker",
		slog.String("base_url", cfg.APIBaseURL),
		slog.Uint64("max_requests", uint64(cbCfg.MaxRequests)),
		slog.Int("timeout_seconds", cfg.CBTimeout),
		slog.Uint64("min_requests", uint64(cbCfg.MinRequests)),
	)
	return httpclient.NewCircuitBreakerClient(base, cbCfg, logger)
}
