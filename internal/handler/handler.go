package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pico-pos/internal/middleware"
	"pico-pos/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already sent; an encoding failure cannot be reported.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps err onto a status code and writes the standard error body.
// Errors that are not domain errors are logged and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status, domainErr := classify(err)

	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Int("status", status).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         domainErr.Code,
		Message:       domainErr.Message,
		CorrelationID: middleware.GetRequestID(r.Context()),
	})
}

func classify(err error) (int, *model.DomainError) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, model.NewDomainError(model.ErrCodeInternalError, "internal server error")
	}

	switch domainErr.Code {
	case model.ErrCodeMenuItemNotFound,
		model.ErrCodeCartLineNotFound,
		model.ErrCodeTableNotFound,
		model.ErrCodeOrderNotFound:
		return http.StatusNotFound, domainErr
	case model.ErrCodeOutOfStock,
		model.ErrCodeInsufficientStock,
		model.ErrCodeEmptyCart,
		model.ErrCodeNoActiveTable,
		model.ErrCodeAlreadyRefunded,
		model.ErrCodeConfirmationRequired:
		return http.StatusConflict, domainErr
	case model.ErrCodeNotLoggedIn:
		return http.StatusUnauthorized, domainErr
	case model.ErrCodeInsufficientCredits:
		return http.StatusPaymentRequired, domainErr
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError, domainErr
	default:
		return http.StatusBadRequest, domainErr
	}
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

// confirmed reports whether a destructive request carries ?confirm=true.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
