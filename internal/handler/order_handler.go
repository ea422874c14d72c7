package handler

import (
	"bytes"
	"net/http"

	"pico-pos/internal/model"
	"pico-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles cart, checkout and order log requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// RegisterTableRoutes registers POST /{id}/open on the tables router.
func (h *OrderHandler) RegisterTableRoutes(r chi.Router) {
	r.Post("/{id}/open", h.OpenTable)
}

// RegisterCartRoutes registers the cart endpoints.
func (h *OrderHandler) RegisterCartRoutes(r chi.Router) {
	r.Get("/", h.Cart)
	r.Delete("/", h.CloseTable)
	r.Post("/items", h.AddItem)
	r.Patch("/items/{itemId}", h.UpdateQuantity)
	r.Put("/items/{itemId}/note", h.SetNote)
	r.Post("/checkout", h.Checkout)
}

// RegisterOrderRoutes registers the order log endpoints.
func (h *OrderHandler) RegisterOrderRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/refund", h.Refund)
	r.Get("/{id}/receipt", h.Receipt)
}

// OpenTable handles POST /api/tables/{id}/open requests.
func (h *OrderHandler) OpenTable(w http.ResponseWriter, r *http.Request) {
	id, err := tableID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.OpenTable(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// CloseTable handles DELETE /api/cart requests.
func (h *OrderHandler) CloseTable(w http.ResponseWriter, r *http.Request) {
	h.service.CloseTable(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Cart handles GET /api/cart requests.
func (h *OrderHandler) Cart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Cart(r.Context()))
}

// AddItem handles POST /api/cart/items requests.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.AddItem(r.Context(), req.ItemID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// UpdateQuantity handles PATCH /api/cart/items/{itemId} requests.
func (h *OrderHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.QuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), chi.URLParam(r, "itemId"), req.Delta)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// SetNote handles PUT /api/cart/items/{itemId}/note requests.
func (h *OrderHandler) SetNote(w http.ResponseWriter, r *http.Request) {
	var req model.NoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.SetNote(r.Context(), chi.URLParam(r, "itemId"), req.Note)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Checkout handles POST /api/cart/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Checkout(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Refund handles POST /api/orders/{id}/refund?confirm=true requests.
func (h *OrderHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if !confirmed(r) {
		writeError(w, r, model.ErrConfirmationRequired, h.logger)
		return
	}

	order, err := h.service.Refund(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Receipt handles GET /api/orders/{id}/receipt requests with a plain text body.
func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var buf bytes.Buffer
	if err := h.service.WriteReceipt(r.Context(), id, &buf); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func orderID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeInvalidID, "invalid order ID format")
	}
	return id, nil
}
