package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/doulovera/proyx-app/internal/config"
	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/format"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/internal/session"
	"github.com/doulovera/proyx-app/internal/viewmodel"
	"github.com/doulovera/proyx-app/pkg/tracing"
)

// StorefrontName labels the storefront's logs and spans.
const StorefrontName = "storefront"

// Storefront wires the session, the services and every screen's view model.
type Storefront struct {
	cfg            *config.Config
	logger         *slog.Logger
	session        *session.Store
	services       service.Services
	format         *format.Formatter
	now            func() time.Time
	tracerShutdown tracing.Shutdown

	Home     *viewmodel.HomeViewModel
	Events   *viewmodel.EventsViewModel
	Stores   *viewmodel.StoresViewModel
	Products *viewmodel.ProductsViewModel
	Login    *viewmodel.LoginViewModel
	SignUp   *viewmodel.SignUpViewModel
	Profile  *viewmodel.ProfileViewModel
}

// NewStorefront creates the storefront, initializing tracing and the
// configured backend.
func NewStorefront(cfg *config.Config, logger *slog.Logger) (*Storefront, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    StorefrontName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	services, _, err := buildServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	s := newStorefront(cfg, services, logger, time.Now)
	s.tracerShutdown = tracerShutdown
	return s, nil
}

func newStorefront(cfg *config.Config, services service.Services, logger *slog.Logger, now func() time.Time) *Storefront {
	store := session.NewStore(logger)
	return &Storefront{
		cfg:      cfg,
		logger:   logger,
		session:  store,
		services: services,
		format:   format.New(cfg.Locale, cfg.Location()),
		now:      now,
		Home:     viewmodel.NewHomeViewModel(services.Events, services.Stores, services.Products, logger),
		Events:   viewmodel.NewEventsViewModel(services.Events, logger),
		Stores:   viewmodel.NewStoresViewModel(services.Stores, logger),
		Products: viewmodel.NewProductsViewModel(services.Products, logger),
		Login:    viewmodel.NewLoginViewModel(services.Auth, store, logger),
		SignUp:   viewmodel.NewSignUpViewModel(services.Auth, store, logger),
		Profile:  viewmodel.NewProfileViewModel(services.Profile, store, logger),
	}
}

// Session returns the shared session store.
func (s *Storefront) Session() *session.Store {
	return s.session
}

// Purchase starts a ticket purchase flow for event.
func (s *Storefront) Purchase(event domain.Event) *viewmodel.PurchaseViewModel {
	return viewmodel.NewPurchaseViewModel(event, s.services.Purchase, s.session, s.logger)
}

// DemoReport summarizes one scripted run through the storefront.
type DemoReport struct {
	User           domain.UserProfile
	FeaturedEvents int
	FeaturedStores int
	ThisWeek       int
	Event          domain.Event
	Purchase       *domain.PurchaseResult
}

// RunDemo signs in with the demo credentials, loads the home screen, lists
// this week's events, buys one ticket for the first event with seats left
// and signs out.
func (s *Storefront) RunDemo(ctx context.Context) (*DemoReport, error) {
	if err := s.Login.Login(ctx, s.cfg.DemoEmail, s.cfg.DemoPassword); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer s.Profile.Logout()

	user, _ := s.session.User()
	report := &DemoReport{User: user}
	s.logger.Info("signed in",
		slog.String("user_id", user.ID),
		slog.String("name", user.FullName()),
		slog.String("tier", string(user.MembershipTier)),
	)

	if err := s.Home.LoadInitial(ctx); err != nil {
		return nil, fmt.Errorf("load home: %w", err)
	}
	home := s.Home.State().Data
	report.FeaturedEvents = len(home.Events)
	report.FeaturedStores = len(home.Stores)
	s.logger.Info("home loaded",
		slog.Int("featured_events", len(home.Events)),
		slog.Int("featured_stores", len(home.Stores)),
		slog.Int("featured_products", len(home.Products)),
	)

	if err := s.Events.LoadInitial(ctx); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	now := s.now()
	s.Events.SetFilter(viewmodel.FilterThisWeek)
	thisWeek := s.Events.Filtered(now)
	report.ThisWeek = len(thisWeek)
	for _, e := range thisWeek {
		s.logger.Info("event",
			slog.String("id", e.ID),
			slog.String("title", e.Title),
			slog.String("when", s.format.EventDate(e.StartsAt)+" "+s.format.EventTime(e.StartsAt)),
			slog.String("price", s.format.Price(e.Price)),
			slog.String("tickets", s.format.Tickets(e.AvailableTickets())),
		)
	}

	event, ok := pickEvent(thisWeek, now)
	if !ok {
		event, ok = pickEvent(s.Events.State().Data.Items, now)
	}
	if !ok {
		return nil, errors.New("no upcoming event with tickets left")
	}
	report.Event = event

	result, err := s.buyOne(ctx, event, now)
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}
	report.Purchase = result
	s.logger.Info("tickets purchased",
		slog.String("order_id", result.Order.ID),
		slog.String("event", event.Title),
		slog.String("total", s.format.Price(result.Order.Total)),
		slog.Int("tickets", len(result.Tickets)),
	)
	return report, nil
}

func (s *Storefront) buyOne(ctx context.Context, event domain.Event, now time.Time) (*domain.PurchaseResult, error) {
	vm := s.Purchase(event)
	vm.SetTicketCount(1)
	if err := vm.ContinueToPayment(); err != nil {
		return nil, err
	}
	card := domain.PaymentDetails{
		CardholderName: "Cliente Demo",
		CardNumber:     "4242424242424242",
		ExpiryMonth:    12,
		ExpiryYear:     now.Year() + 3,
		CVV:            "123",
	}
	if err := vm.Submit(ctx, card); err != nil {
		return nil, err
	}
	return vm.State().Result, nil
}

// pickEvent returns the first event that has not started and still has
// tickets.
func pickEvent(events []domain.Event, now time.Time) (domain.Event, bool) {
	for _, e := range events {
		if e.StartsAt.After(now) && !e.IsSoldOut() {
			return e, true
		}
	}
	return domain.Event{}, false
}

// Shutdown flushes pending spans.
func (s *Storefront) Shutdown(ctx context.Context) error {
	if s.tracerShutdown == nil {
		return nil
	}
	return s.tracerShutdown(ctx)
}
