package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mini-shop/internal/model"
	"mini-shop/internal/repository"
	"mini-shop/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
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

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON,
			"invalid request body", h.logger)
		return
	}

	if err := model.Validate(&order); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError,
			"failed to validate order", h.logger)
		return
	}

	receipt, err := h.service.Create(r.Context(), &order)
	if err != nil {
		h.writeCreateError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

func (h *OrderHandler) writeCreateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrUnavailable) {
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeStorageUnavailable,
			"database not available", h.logger)
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		writeError(w, r, http.StatusBadRequest, derr.Code, derr.Message, h.logger)
		return
	}

	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError,
		"failed to create order", h.logger)
}
