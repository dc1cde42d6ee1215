package mockapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/httputil"
	"github.com/doulovera/proyx-app/pkg/middleware"
	"github.com/doulovera/proyx-app/pkg/pagination"
	"github.com/doulovera/proyx-app/pkg/validator"
)

const maxBodyBytes = 1 << 20

// Handler adapts the service interfaces to HTTP.
type Handler struct {
	services service.Services
	logger   *slog.Logger
}

// NewHandler creates a handler over services.
func NewHandler(services service.Services, logger *slog.Logger) *Handler {
	return &Handler{services: services, logger: logger}
}

// --- Auth ---

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req domain.RegisterRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.services.Auth.Register(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// --- Profile ---

// GetProfile handles GET /api/v1/users/me
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.Profile.Profile(r.Context(), middleware.TokenFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/users/me
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req domain.UpdateProfileRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.services.Profile.UpdateProfile(r.Context(), middleware.TokenFromContext(r.Context()), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

// --- Events ---

// ListEvents handles GET /api/v1/events. Category or q switch to search.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if hasFilter(r) {
		list, err := h.services.Events.Search(r.Context(), service.ParseEventQuery(r.URL.Query()))
		writeList(h, w, r, list, err)
		return
	}
	list, err := h.services.Events.List(r.Context(), pagination.FromRequest(r))
	writeList(h, w, r, list, err)
}

// FeaturedEvents handles GET /api/v1/events/featured
func (h *Handler) FeaturedEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Events.Featured(r.Context())
	writeItems(h, w, r, items, err)
}

// UpcomingEvents handles GET /api/v1/events/upcoming
func (h *Handler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Events.Upcoming(r.Context())
	writeItems(h, w, r, items, err)
}

// TrendingEvents handles GET /api/v1/events/trending
func (h *Handler) TrendingEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Events.Trending(r.Context())
	writeItems(h, w, r, items, err)
}

// PurchaseTickets handles POST /api/v1/events/{id}/tickets
func (h *Handler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req domain.TicketPurchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	req.EventID = chi.URLParam(r, "id")

	result, err := h.services.Purchase.PurchaseTickets(r.Context(), middleware.TokenFromContext(r.Context()), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, result)
}

// --- Stores ---

// ListStores handles GET /api/v1/stores
func (h *Handler) ListStores(w http.ResponseWriter, r *http.Request) {
	if hasFilter(r) {
		list, err := h.services.Stores.Search(r.Context(), service.ParseStoreQuery(r.URL.Query()))
		writeList(h, w, r, list, err)
		return
	}
	list, err := h.services.Stores.List(r.Context(), pagination.FromRequest(r))
	writeList(h, w, r, list, err)
}

// FeaturedStores handles GET /api/v1/stores/featured
func (h *Handler) FeaturedStores(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Stores.Featured(r.Context())
	writeItems(h, w, r, items, err)
}

// --- Products ---

// ListProducts handles GET /api/v1/products
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if hasFilter(r) {
		list, err := h.services.Products.Search(r.Context(), service.ParseProductQuery(r.URL.Query()))
		writeList(h, w, r, list, err)
		return
	}
	list, err := h.services.Products.List(r.Context(), pagination.FromRequest(r))
	writeList(h, w, r, list, err)
}

// FeaturedProducts handles GET /api/v1/products/featured
func (h *Handler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Products.Featured(r.Context())
	writeItems(h, w, r, items, err)
}

// TrendingProducts handles GET /api/v1/products/trending
func (h *Handler) TrendingProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Products.Trending(r.Context())
	writeItems(h, w, r, items, err)
}

// --- Helpers ---

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteError(w, r, err, h.logger)
}

func hasFilter(r *http.Request) bool {
	q := r.URL.Query()
	return q.Get("category") != "" || q.Get("q") != ""
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation(fmt.Sprintf("malformed request body: %v", err))
	}
	return nil
}

func writeList[T any](h *Handler, w http.ResponseWriter, r *http.Request, list pagination.List[T], err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list.Items == nil {
		list.Items = []T{}
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

// writeItems wraps an unpaged section in the list envelope.
func writeItems[T any](h *Handler, w http.ResponseWriter, r *http.Request, items []T, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit := min(max(len(items), 1), pagination.MaxLimit)
	httputil.WriteJSON(w, http.StatusOK, pagination.NewList(items, len(items), pagination.Params{Page: 1, Limit: limit}))
}
