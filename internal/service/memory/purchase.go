package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doulovera/proyx-app/internal/domain"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/validator"
)

// declinedCardSuffix marks the test card the simulated gateway refuses.
const declinedCardSuffix = "0002"

// PurchaseService sells event tickets against the sample events.
type PurchaseService struct {
	b *Backend
}

// PurchaseTickets charges the card through the simulated gateway and, on
// approval, reserves req.Quantity tickets. Nothing is reserved when any
// step fails.
func (s *PurchaseService) PurchaseTickets(ctx context.Context, token string, req domain.TicketPurchaseRequest) (*domain.PurchaseResult, error) {
	acc, err := s.b.userFor(token)
	if err != nil {
		return nil, err
	}
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	now := s.b.now()
	if req.Payment.Expired(now) {
		return nil, apperrors.ValidationFields("your card has expired",
			map[string]string{"expiry_year": "card has expired"})
	}

	event, err := s.b.eventByID(req.EventID)
	if err != nil {
		return nil, err
	}
	if err := checkAvailability(event, req.Quantity); err != nil {
		return nil, err
	}

	total := event.Price * int64(req.Quantity)
	payment, err := s.charge(ctx, req.Payment, total)
	if err != nil {
		return nil, err
	}
	if !payment.Approved() {
		return nil, apperrors.ValidationFields(payment.Message,
			map[string]string{"card_number": "card was declined"})
	}

	s.b.mu.Lock()
	idx := s.b.eventIndex(req.EventID)
	if idx < 0 {
		s.b.mu.Unlock()
		return nil, apperrors.NotFound("event", req.EventID)
	}
	// Another purchase may have taken the seats during the gateway call.
	if err := checkAvailability(s.b.events[idx], req.Quantity); err != nil {
		s.b.mu.Unlock()
		return nil, err
	}
	s.b.events[idx].CurrentAttendees += req.Quantity
	holder := acc.profile.FullName()
	userID := acc.profile.ID
	s.b.mu.Unlock()

	order := domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		EventID:   event.ID,
		Quantity:  req.Quantity,
		UnitPrice: event.Price,
		Total:     total,
		Status:    domain.OrderStatusConfirmed,
		CreatedAt: now.UTC(),
	}
	tickets := make([]domain.Ticket, req.Quantity)
	for i := range tickets {
		id := uuid.NewString()
		tickets[i] = domain.Ticket{
			ID:      id,
			OrderID: order.ID,
			EventID: event.ID,
			Holder:  holder,
			Code:    ticketCode(id),
		}
	}

	s.b.logger.InfoContext(ctx, "tickets purchased",
		slog.String("order_id", order.ID),
		slog.String("event_id", event.ID),
		slog.Int("quantity", req.Quantity),
		slog.Int64("total", total),
	)

	return &domain.PurchaseResult{Order: order, Tickets: tickets, Payment: payment}, nil
}

// charge waits for the simulated gateway. Cancelling ctx abandons the
// charge before anything is reserved.
func (s *PurchaseService) charge(ctx context.Context, card domain.PaymentDetails, amount int64) (domain.PaymentGatewayResponse, error) {
	if s.b.paymentDelay > 0 {
		timer := time.NewTimer(s.b.paymentDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return domain.PaymentGatewayResponse{}, apperrors.Network(ctx.Err())
		}
	} else if err := ctx.Err(); err != nil {
		return domain.PaymentGatewayResponse{}, apperrors.Network(err)
	}

	resp := domain.PaymentGatewayResponse{
		TransactionID: "txn_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Last4:         card.Last4(),
		Amount:        amount,
		ProcessedAt:   s.b.now().UTC(),
	}
	if card.Last4() == declinedCardSuffix {
		resp.Status = domain.PaymentStatusDeclined
		resp.Message = "your card was declined"
		return resp, nil
	}
	resp.Status = domain.PaymentStatusApproved
	resp.AuthorizationCode = strings.ToUpper(uuid.NewString()[:6])
	return resp, nil
}

func checkAvailability(e domain.Event, quantity int) error {
	available := e.AvailableTickets()
	switch {
	case available == 0:
		return apperrors.Conflict("this event is sold out")
	case quantity > available:
		return apperrors.Conflict(fmt.Sprintf("only %d tickets left", available))
	}
	return nil
}

func (b *Backend) eventByID(id string) (domain.Event, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if idx := b.eventIndex(id); idx >= 0 {
		return b.events[idx].Clone(), nil
	}
	return domain.Event{}, apperrors.NotFound("event", id)
}

// eventIndex must be called with b.mu held.
func (b *Backend) eventIndex(id string) int {
	for i := range b.events {
		if b.events[i].ID == id {
			return i
		}
	}
	return -1
}

func ticketCode(id string) string {
	return "PX-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:10])
}
