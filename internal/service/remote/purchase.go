package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/doulovera/proyx-app/internal/domain"
)

// PurchaseService calls the ticket purchase endpoint.
type PurchaseService struct {
	client *Client
}

// PurchaseTickets buys req.Quantity tickets for the token's user.
func (s *PurchaseService) PurchaseTickets(ctx context.Context, token string, req domain.TicketPurchaseRequest) (*domain.PurchaseResult, error) {
	var result domain.PurchaseResult
	path := "/events/" + url.PathEscape(req.EventID) + "/tickets"
	if err := s.client.send(ctx, "purchase", http.MethodPost, path, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
