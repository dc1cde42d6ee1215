package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doulovera/proyx-app/internal/domain"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

func validCard() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardholderName: "María González",
		CardNumber:     "4111111111111111",
		ExpiryMonth:    12,
		ExpiryYear:     2030,
		CVV:            "123",
	}
}

func purchase(eventID string, quantity int) domain.TicketPurchaseRequest {
	return domain.TicketPurchaseRequest{EventID: eventID, Quantity: quantity, Payment: validCard()}
}

func attendees(t *testing.T, b *Backend, eventID string) int {
	t.Helper()
	e, err := b.eventByID(eventID)
	require.NoError(t, err)
	return e.CurrentAttendees
}

func TestPurchaseTickets_Success(t *testing.T) {
	b := newTestBackend(t, 0)
	session := login(t, b, DemoEmail)

	result, err := b.Services().Purchase.PurchaseTickets(context.Background(), session.Token, purchase("evt-005", 2))
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusConfirmed, result.Order.Status)
	assert.Equal(t, session.User.ID, result.Order.UserID)
	assert.Equal(t, int64(1200), result.Order.UnitPrice)
	assert.Equal(t, int64(2400), result.Order.Total)
	assert.Equal(t, testNow, result.Order.CreatedAt)

	require.Len(t, result.Tickets, 2)
	for _, tk := range result.Tickets {
		assert.Equal(t, result.Order.ID, tk.OrderID)
		assert.Equal(t, "María González", tk.Holder)
		assert.True(t, strings.HasPrefix(tk.Code, "PX-"))
	}
	assert.NotEqual(t, result.Tickets[0].Code, result.Tickets[1].Code)

	assert.True(t, result.Payment.Approved())
	assert.Equal(t, "1111", result.Payment.Last4)
	assert.Equal(t, int64(2400), result.Payment.Amount)
	assert.NotEmpty(t, result.Payment.AuthorizationCode)

	assert.Equal(t, 7, attendees(t, b, "evt-005"))
}

func TestPurchaseTickets_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     func() domain.TicketPurchaseRequest
		wantErr error
		wantMsg string
	}{
		{
			name:    "sold out",
			req:     func() domain.TicketPurchaseRequest { return purchase("evt-003", 1) },
			wantErr: apperrors.ErrConflict,
			wantMsg: "this event is sold out",
		},
		{
			name:    "not enough left",
			req:     func() domain.TicketPurchaseRequest { return purchase("evt-002", 9) },
			wantErr: apperrors.ErrConflict,
			wantMsg: "only 8 tickets left",
		},
		{
			name:    "quantity above limit",
			req:     func() domain.TicketPurchaseRequest { return purchase("evt-007", 11) },
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "zero quantity",
			req:     func() domain.TicketPurchaseRequest { return purchase("evt-007", 0) },
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown event",
			req:     func() domain.TicketPurchaseRequest { return purchase("evt-404", 1) },
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "expired card",
			req: func() domain.TicketPurchaseRequest {
				r := purchase("evt-007", 1)
				r.Payment.ExpiryYear = 2026
				r.Payment.ExpiryMonth = 2
				return r
			},
			wantErr: apperrors.ErrValidation,
			wantMsg: "your card has expired",
		},
		{
			name: "declined card",
			req: func() domain.TicketPurchaseRequest {
				r := purchase("evt-007", 1)
				r.Payment.CardNumber = "4000000000000002"
				return r
			},
			wantErr: apperrors.ErrValidation,
			wantMsg: "your card was declined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t, 0)
			session := login(t, b, DemoEmail)
			req := tt.req()

			result, err := b.Services().Purchase.PurchaseTickets(context.Background(), session.Token, req)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, apperrors.UserMessage(err))
			}
		})
	}
}

func TestPurchaseTickets_RejectionReservesNothing(t *testing.T) {
	b := newTestBackend(t, 0)
	session := login(t, b, DemoEmail)
	before := attendees(t, b, "evt-007")

	req := purchase("evt-007", 2)
	req.Payment.CardNumber = "4000000000000002"
	_, err := b.Services().Purchase.PurchaseTickets(context.Background(), session.Token, req)
	require.Error(t, err)

	assert.Equal(t, before, attendees(t, b, "evt-007"))
}

func TestPurchaseTickets_RequiresSession(t *testing.T) {
	b := newTestBackend(t, 0)

	_, err := b.Services().Purchase.PurchaseTickets(context.Background(), "", purchase("evt-005", 1))
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestPurchaseTickets_CancelledDuringGateway(t *testing.T) {
	b := newTestBackend(t, time.Minute)
	session := login(t, b, DemoEmail)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := b.Services().Purchase.PurchaseTickets(ctx, session.Token, purchase("evt-005", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 5, attendees(t, b, "evt-005"))
}

func TestPurchaseTickets_ConcurrentBuyersNeverOversell(t *testing.T) {
	b := newTestBackend(t, 0)
	session := login(t, b, DemoEmail)
	purchases := b.Services().Purchase

	// evt-002 has 8 seats left.
	const buyers = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := purchases.PurchaseTickets(context.Background(), session.Token, purchase("evt-002", 1))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, succeeded)
	assert.Equal(t, buyers-8, conflicts)
	assert.Equal(t, 80, attendees(t, b, "evt-002"))
}
