package handler

import (
	"net/http"

	"pico-pos/internal/model"
	"pico-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// SessionHandler handles login, logout and store profile requests.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

// RegisterRoutes registers the public session endpoints.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/", h.Current)
}

// RegisterProfileRoutes registers the profile endpoints, which need a session.
func (h *SessionHandler) RegisterProfileRoutes(r chi.Router) {
	r.Get("/", h.Current)
	r.Put("/", h.UpdateProfile)
}

// Login handles POST /api/session/login requests.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profile, err := h.service.Login(r.Context(), req.Account)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Logout handles POST /api/session/logout requests.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Current handles GET /api/session and GET /api/profile requests.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Current(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/profile requests.
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.StoreProfile
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
