package config

import (
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/doulovera/proyx-app/pkg/config"
)

// Backend modes.
const (
	BackendMemory = "memory"
	BackendRemote = "remote"
)

const minSecretLength = 32

// Config holds all configuration for the storefront and the mock backend.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Data source: "memory" serves the sample catalog in process, "remote"
	// talks to APIBaseURL.
	Backend     string        `env:"PROYX_BACKEND" envDefault:"memory"`
	APIBaseURL  string        `env:"PROYX_API_BASE_URL" envDefault:"http://localhost:8080"`
	HTTPTimeout time.Duration `env:"PROYX_HTTP_TIMEOUT" envDefault:"15s"`

	// Circuit breaker around the remote backend. Off by default so every
	// call reaches the server.
	CBEnabled      bool    `env:"CB_ENABLED" envDefault:"false"`
	CBMaxRequests  uint32  `env:"CB_MAX_REQUESTS" envDefault:"1"`
	CBInterval     int     `env:"CB_INTERVAL_SECONDS" envDefault:"60"`
	CBTimeout      int     `env:"CB_TIMEOUT_SECONDS" envDefault:"30"`
	CBFailureRatio float64 `env:"CB_FAILURE_RATIO" envDefault:"0.5"`
	CBMinRequests  uint32  `env:"CB_MIN_REQUESTS" envDefault:"5"`

	// In-memory backend
	PaymentDelay time.Duration `env:"PROYX_PAYMENT_DELAY" envDefault:"1500ms"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"proyx-development-secret-change-me"`
	TokenExpiry  time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// Display
	Locale   string `env:"PROYX_LOCALE" envDefault:"es-MX"`
	TimeZone string `env:"PROYX_TIME_ZONE" envDefault:"America/Mexico_City"`

	// Mock API server
	HTTPPort    int      `env:"MOCKAPI_HTTP_PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Per-IP request rate limit; 0 RPS disables it
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"200"`

	// Pprof debug endpoints (IP allowlist in CIDR notation)
	PprofEnabled      bool     `env:"PPROF_ENABLED" envDefault:"false"`
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.0/8,::1/128" envSeparator:","`

	// Demo run credentials
	DemoEmail    string `env:"PROYX_DEMO_EMAIL" envDefault:"maria@proyectox.com"`
	DemoPassword string `env:"PROYX_DEMO_PASSWORD" envDefault:"password123"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load proyx config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the development defaults are acceptable.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "test"
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	switch c.Backend {
	case BackendMemory, BackendRemote:
	default:
		return fmt.Errorf("invalid PROYX_BACKEND %q: must be %s or %s", c.Backend, BackendMemory, BackendRemote)
	}
	if c.Backend == BackendRemote {
		u, err := url.ParseRequestURI(c.APIBaseURL)
		if err != nil {
			return fmt.Errorf("invalid PROYX_API_BASE_URL %q: %w", c.APIBaseURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid PROYX_API_BASE_URL %q: scheme must be http or https", c.APIBaseURL)
		}
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("PROYX_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.PaymentDelay < 0 {
		return fmt.Errorf("PROYX_PAYMENT_DELAY must not be negative, got %s", c.PaymentDelay)
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %g", c.RateLimitRPS)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	if c.TokenExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive, got %s", c.TokenExpiry)
	}
	if !c.IsDevelopment() && len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters outside development", minSecretLength)
	}
	if c.CBFailureRatio <= 0 || c.CBFailureRatio > 1.0 {
		return fmt.Errorf("CB_FAILURE_RATIO must be in (0.0, 1.0], got %f", c.CBFailureRatio)
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1.0 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %f", c.OTELSampleRate)
	}
	return nil
}
