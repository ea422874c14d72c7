package handler

import (
	"net/http"
	"strconv"

	"pico-pos/internal/model"
	"pico-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// FloorHandler handles floor plan requests.
type FloorHandler struct {
	service service.FloorService
	logger  zerolog.Logger
}

// NewFloorHandler creates a new floor plan handler.
func NewFloorHandler(service service.FloorService, logger zerolog.Logger) *FloorHandler {
	return &FloorHandler{
		service: service,
		logger:  logger.With().Str("handler", "floor").Logger(),
	}
}

// RegisterRoutes registers table endpoints on the given router. Opening a
// table lives on the order handler.
func (h *FloorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Remove)
}

func (h *FloorHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *FloorHandler) Add(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.service.Add(r.Context()))
}

// Update handles PATCH /api/tables/{id} requests.
func (h *FloorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := tableID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req model.TableUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	table, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// Remove handles DELETE /api/tables/{id}?confirm=true requests.
func (h *FloorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := tableID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if !confirmed(r) {
		writeError(w, r, model.ErrConfirmationRequired, h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func tableID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, model.NewDomainError(model.ErrCodeInvalidID, "invalid table ID")
	}
	return id, nil
}
