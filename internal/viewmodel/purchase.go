package viewmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/observable"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/internal/session"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// PurchaseStep is a screen of the ticket purchase flow.
type PurchaseStep int

const (
	StepSelectTickets PurchaseStep = iota
	StepPayment
	StepSuccess
)

func (s PurchaseStep) String() string {
	switch s {
	case StepSelectTickets:
		return "select_tickets"
	case StepPayment:
		return "payment"
	case StepSuccess:
		return "success"
	}
	return "unknown"
}

// PurchaseState is one snapshot of the purchase flow.
type PurchaseState struct {
	Step         PurchaseStep
	Event        domain.Event
	Quantity     int
	Submitting   bool
	Result       *domain.PurchaseResult
	Err          error
	ErrorMessage string
}

// Total is price times quantity, in cents.
func (s PurchaseState) Total() int64 {
	return s.Event.Price * int64(s.Quantity)
}

// PurchaseViewModel walks one event through SelectTickets, Payment and
// Success.
type PurchaseViewModel struct {
	state   *observable.Value[PurchaseState]
	svc     service.PurchaseService
	session *session.Store
	now     func() time.Time
	logger  *slog.Logger
}

// NewPurchaseViewModel starts the flow for event with one ticket selected,
// or none when it is sold out.
func NewPurchaseViewModel(event domain.Event, svc service.PurchaseService, store *session.Store, logger *slog.Logger) *PurchaseViewModel {
	return &PurchaseViewModel{
		state: observable.New(PurchaseState{
			Step:     StepSelectTickets,
			Event:    event,
			Quantity: clampTickets(1, event),
		}),
		svc:     svc,
		session: store,
		now:     time.Now,
		logger:  logger,
	}
}

// clampTickets bounds n to [1, min(available, MaxTicketsPerPurchase)]. A
// sold-out event clamps to 0.
func clampTickets(n int, e domain.Event) int {
	upper := e.MaxSelectableTickets()
	if upper < 1 {
		return 0
	}
	return min(max(n, 1), upper)
}

// State returns the current snapshot.
func (vm *PurchaseViewModel) State() PurchaseState {
	return vm.state.Get()
}

// Subscribe delivers the current snapshot and then every change.
func (vm *PurchaseViewModel) Subscribe() (<-chan PurchaseState, func()) {
	return vm.state.Subscribe()
}

// Total is the current order total in cents.
func (vm *PurchaseViewModel) Total() int64 {
	return vm.State().Total()
}

// Increment adds one ticket, up to the limit.
func (vm *PurchaseViewModel) Increment() int {
	return vm.SetTicketCount(vm.State().Quantity + 1)
}

// Decrement removes one ticket, down to one.
func (vm *PurchaseViewModel) Decrement() int {
	return vm.SetTicketCount(vm.State().Quantity - 1)
}

// SetTicketCount sets the quantity, clamped, and returns what was stored.
// It has no effect outside the ticket selection step.
func (vm *PurchaseViewModel) SetTicketCount(n int) int {
	return vm.state.Update(func(s PurchaseState) PurchaseState {
		if s.Step == StepSelectTickets {
			s.Quantity = clampTickets(n, s.Event)
		}
		return s
	}).Quantity
}

// ContinueToPayment moves to the payment step.
func (vm *PurchaseViewModel) ContinueToPayment() error {
	var err error
	vm.state.Update(func(s PurchaseState) PurchaseState {
		switch {
		case s.Step != StepSelectTickets:
			err = apperrors.Validation("tickets were already selected")
		case s.Quantity < 1:
			err = apperrors.Conflict("this event is sold out")
		default:
			s.Step = StepPayment
			s.Err, s.ErrorMessage = nil, ""
		}
		return s
	})
	return err
}

// Back returns from payment to ticket selection.
func (vm *PurchaseViewModel) Back() {
	vm.state.Update(func(s PurchaseState) PurchaseState {
		if s.Step == StepPayment && !s.Submitting {
			s.Step = StepSelectTickets
			s.Err, s.ErrorMessage = nil, ""
		}
		return s
	})
}

// Submit validates the card, requires a signed-in user and buys the
// selected tickets. On failure the flow stays on the payment step with an
// error message.
func (vm *PurchaseViewModel) Submit(ctx context.Context, payment domain.PaymentDetails) error {
	if vm.State().Step != StepPayment {
		return apperrors.Validation("choose your tickets first")
	}

	token, ok := vm.session.Token()
	if !ok {
		return vm.reject(apperrors.Unauthorized("sign in to buy tickets"))
	}
	if err := validator.Check(payment); err != nil {
		return vm.reject(err)
	}
	if payment.Expired(vm.now()) {
		return vm.reject(apperrors.ValidationFields("your card has expired",
			map[string]string{"expiry_year": "card has expired"}))
	}

	// A charge is not idempotent, so a second submit while one is in flight
	// is refused rather than sent.
	var busy bool
	current := vm.state.Update(func(s PurchaseState) PurchaseState {
		if s.Submitting || s.Step != StepPayment {
			busy = true
			return s
		}
		s.Submitting = true
		s.Err, s.ErrorMessage = nil, ""
		return s
	})
	if busy {
		return apperrors.Conflict("a payment is already being processed")
	}

	req := domain.TicketPurchaseRequest{EventID: current.Event.ID, Quantity: current.Quantity, Payment: payment}
	result, err := vm.svc.PurchaseTickets(ctx, token, req)
	if err != nil {
		logger.WithContext(ctx, vm.logger).WarnContext(ctx, "ticket purchase failed",
			slog.String("event_id", req.EventID), slog.String("code", apperrors.Code(err)))
		return vm.fail(err)
	}

	vm.state.Update(func(s PurchaseState) PurchaseState {
		s.Submitting = false
		s.Step = StepSuccess
		s.Result = result
		return s
	})
	logger.WithContext(ctx, vm.logger).InfoContext(ctx, "tickets purchased",
		slog.String("order_id", result.Order.ID), slog.Int("quantity", req.Quantity))
	return nil
}

// Reset restarts the flow for an updated copy of the event.
func (vm *PurchaseViewModel) Reset(event domain.Event) {
	vm.state.Set(PurchaseState{Step: StepSelectTickets, Event: event, Quantity: clampTickets(1, event)})
}

// reject records an error found before the charge was sent.
func (vm *PurchaseViewModel) reject(err error) error {
	vm.state.Update(func(s PurchaseState) PurchaseState {
		s.Err = err
		s.ErrorMessage = apperrors.UserMessage(err)
		return s
	})
	return err
}

// fail records an error from the charge itself and ends the submission.
func (vm *PurchaseViewModel) fail(err error) error {
	vm.state.Update(func(s PurchaseState) PurchaseState {
		s.Submitting = false
		s.Err = err
		s.ErrorMessage = apperrors.UserMessage(err)
		return s
	})
	return err
}
