// Package memory implements the storefront services over an in-process
// sample catalog. It backs the mock API and offline demos.
package memory

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/doulovera/proyx-app/internal/auth"
	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

// Demo credentials seeded into every backend.
const (
	AdminEmail    = "admin@proyectox.com"
	DemoEmail     = "maria@proyectox.com"
	DemoPassword  = "password123"
	trendingLimit = 5
)

// Config tunes the backend.
type Config struct {
	JWTSecret   string
	TokenExpiry time.Duration
	// PaymentDelay simulates the payment gateway round trip.
	PaymentDelay time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

type account struct {
	profile      domain.UserProfile
	passwordHash string
}

// Backend holds the catalog and user accounts. Safe for concurrent use.
type Backend struct {
	mu       sync.RWMutex
	events   []domain.Event
	stores   []domain.Store
	products []domain.Product
	accounts map[string]*account // by user ID
	emails   map[string]string   // normalized email -> user ID

	tokens       *auth.JWTManager
	paymentDelay time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// New creates a backend seeded with the sample catalog and demo users.
func New(cfg Config, logger *slog.Logger) (*Backend, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TokenExpiry <= 0 {
		cfg.TokenExpiry = 24 * time.Hour
	}

	b := &Backend{
		accounts:     make(map[string]*account),
		emails:       make(map[string]string),
		tokens:       auth.NewJWTManager(cfg.JWTSecret, cfg.TokenExpiry),
		paymentDelay: cfg.PaymentDelay,
		now:          cfg.Now,
		logger:       logger,
	}
	b.tokens.SetClock(cfg.Now)

	catalog := SampleCatalog(cfg.Now())
	b.events = catalog.Events
	b.stores = catalog.Stores
	b.products = catalog.Products
	sortEvents(b.events)

	if err := b.seedUsers(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) seedUsers() error {
	since := b.now().AddDate(-2, 0, 0).UTC()
	users := []domain.UserProfile{
		{
			ID: "user-admin", Email: AdminEmail, FirstName: "Admin", LastName: "Proyecto X",
			MembershipTier: domain.TierPlatinum, LoyaltyPoints: 5200,
			MemberSince: &since, EmailVerified: true,
		},
		{
			ID: "user-maria", Email: DemoEmail, FirstName: "María", LastName: "González",
			Phone:          "+15550123456",
			Address:        &domain.Address{Street: "Calle 10 #20", City: "Ciudad de México", Country: "MX"},
			MembershipTier: domain.TierGold, LoyaltyPoints: 1250,
			MemberSince: &since, EmailVerified: true,
		},
	}
	for _, u := range users {
		if _, err := b.addAccount(u, DemoPassword); err != nil {
			return err
		}
	}
	return nil
}

// addAccount stores a new user. The caller must not hold b.mu.
func (b *Backend) addAccount(u domain.UserProfile, password string) (*account, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := normalizeEmail(u.Email)
	if _, exists := b.emails[key]; exists {
		return nil, apperrors.Conflict("an account with this email already exists")
	}
	acc := &account{profile: u.Clone(), passwordHash: hash}
	b.accounts[u.ID] = acc
	b.emails[key] = u.ID
	return acc, nil
}

// Tokens returns the manager that signs this backend's session tokens.
func (b *Backend) Tokens() *auth.JWTManager {
	return b.tokens
}

// Ping reports whether the catalog is loaded. Used as a readiness check.
func (b *Backend) Ping(_ context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.events) == 0 || len(b.stores) == 0 || len(b.products) == 0 {
		return errors.New("catalog is empty")
	}
	return nil
}

// Services returns every service backed by b.
func (b *Backend) Services() service.Services {
	return service.Services{
		Auth:     &AuthService{b: b},
		Profile:  &ProfileService{b: b},
		Events:   &EventsService{b: b},
		Stores:   &StoresService{b: b},
		Products: &ProductsService{b: b},
		Purchase: &PurchaseService{b: b},
	}
}

// userFor resolves a token to its account.
func (b *Backend) userFor(token string) (*account, error) {
	claims, err := b.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	acc, ok := b.accounts[claims.UserID]
	if !ok {
		return nil, apperrors.Unauthorized("this account no longer exists")
	}
	return acc, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// sortEvents orders by start time, then ID, so listings are stable.
func sortEvents(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartsAt.Equal(events[j].StartsAt) {
			return events[i].StartsAt.Before(events[j].StartsAt)
		}
		return events[i].ID < events[j].ID
	})
}
