package domain

import (
	"strings"
	"time"
)

// Order status constants.
const (
	OrderStatusConfirmed = "confirmed"
	OrderStatusFailed    = "failed"
)

// Payment status constants reported by the gateway.
const (
	PaymentStatusApproved = "approved"
	PaymentStatusDeclined = "declined"
)

// PaymentDetails is the card data entered on the payment step.
type PaymentDetails struct {
	CardholderName string `json:"cardholder_name" validate:"required,min=2,max=80"`
	CardNumber     string `json:"card_number" validate:"required,credit_card"`
	ExpiryMonth    int    `json:"expiry_month" validate:"gte=1,lte=12"`
	ExpiryYear     int    `json:"expiry_year" validate:"gte=2000,lte=2100"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

// Last4 returns the last four digits of the card number.
func (p PaymentDetails) Last4() string {
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Expired reports whether the card expired before the month of now.
func (p PaymentDetails) Expired(now time.Time) bool {
	y, m, _ := now.Date()
	return p.ExpiryYear < y || (p.ExpiryYear == y && p.ExpiryMonth < int(m))
}

// TicketPurchaseRequest is the body of a ticket purchase.
type TicketPurchaseRequest struct {
	EventID  string         `json:"event_id" validate:"required"`
	Quantity int            `json:"quantity" validate:"gte=1,lte=10"`
	Payment  PaymentDetails `json:"payment"`
}

// Order records a confirmed ticket purchase. Amounts are in cents.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket is one admission issued for an order.
type Ticket struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	EventID string `json:"event_id"`
	Holder  string `json:"holder"`
	Code    string `json:"code"`
}

// PaymentGatewayResponse is the gateway's verdict on a charge.
type PaymentGatewayResponse struct {
	TransactionID     string    `json:"transaction_id"`
	Status            string    `json:"status"`
	AuthorizationCode string    `json:"authorization_code,omitempty"`
	Last4             string    `json:"last4"`
	Amount            int64     `json:"amount"`
	ProcessedAt       time.Time `json:"processed_at"`
	Message           string    `json:"message,omitempty"`
}

// Approved reports whether the charge went through.
func (r PaymentGatewayResponse) Approved() bool {
	return r.Status == PaymentStatusApproved
}

// PurchaseResult is everything the success step shows.
type PurchaseResult struct {
	Order   Order                  `json:"order"`
	Tickets []Ticket               `json:"tickets"`
	Payment PaymentGatewayResponse `json:"payment"`
}
