package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/doulovera/proyx-app/internal/config"
	"github.com/doulovera/proyx-app/internal/mockapi"
	"github.com/doulovera/proyx-app/internal/service/memory"
	"github.com/doulovera/proyx-app/pkg/health"
	"github.com/doulovera/proyx-app/pkg/middleware"
	"github.com/doulovera/proyx-app/pkg/tracing"
)

// MockAPI serves the in-memory backend over HTTP.
type MockAPI struct {
	cfg            *config.Config
	logger         *slog.Logger
	backend        *memory.Backend
	httpServer     *http.Server
	tracerShutdown tracing.Shutdown
}

// NewMockAPI creates the mock backend server, initializing all dependencies.
func NewMockAPI(cfg *config.Config, logger *slog.Logger) (*MockAPI, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    mockapi.ServiceName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	backend, err := memory.New(memory.Config{
		JWTSecret:    cfg.JWTSecret,
		TokenExpiry:  cfg.TokenExpiry,
		PaymentDelay: cfg.PaymentDelay,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create memory backend: %w", err)
	}

	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", backend.Ping)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSOrigins

	router := mockapi.NewRouter(backend.Services(), backend.Tokens().TokenValidator(), healthHandler, logger, corsCfg)
	if cfg.PprofEnabled {
		router = mockapi.WithProfiling(router, cfg.PprofAllowedCIDRs, logger)
		logger.Info("pprof endpoints enabled", slog.Any("allowed_cidrs", cfg.PprofAllowedCIDRs))
	}
	if cfg.RateLimitRPS > 0 {
		router = middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)(router)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &MockAPI{
		cfg:            cfg,
		logger:         logger,
		backend:        backend,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Handler returns the router, for serving without a listener.
func (a *MockAPI) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *MockAPI) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown drains in-flight requests, then flushes pending spans.
func (a *MockAPI) Shutdown() error {
	a.logger.Info("shutting down mock api...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("mock api shutdown complete")
	return errors.Join(errs...)
}
