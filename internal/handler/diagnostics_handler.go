package handler

import (
	"net/http"

	"mini-shop/internal/service"

	"github.com/rs/zerolog"
)

// DiagnosticsHandler handles the storage diagnostics endpoint.
type DiagnosticsHandler struct {
	service service.DiagnosticsService
	logger  zerolog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler.
func NewDiagnosticsHandler(service service.DiagnosticsService, logger zerolog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "diagnostics").Logger(),
	}
}

// Check handles GET /test requests. The report itself absorbs storage
// failures, so this endpoint always answers 200.
func (h *DiagnosticsHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Report(r.Context()))
}
