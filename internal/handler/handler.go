package handler

import (
	"encoding/json"
	"net/http"

	"mini-shop/internal/middleware"
	"mini-shop/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes a standardised error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}

// writeValidationError writes a 422 response carrying field-level detail.
func writeValidationError(w http.ResponseWriter, r *http.Request, verr *model.ValidationError, logger zerolog.Logger) {
	logger.Warn().
		Int("field_count", len(verr.Fields)).
		Str("error", verr.Error()).
		Msg("request payload failed validation")

	writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{
		Error:         model.ErrCodeValidationFailed,
		Message:       "request payload failed validation",
		Fields:        verr.Fields,
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}
