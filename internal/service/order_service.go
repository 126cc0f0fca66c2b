package service

import (
	"context"
	"fmt"

	"mini-shop/internal/model"
	"mini-shop/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(store repository.Store, logger zerolog.Logger) OrderService {
	return &orderService{
		store:  store,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Create persists a new order after checking the one business rule the
// system has: the item list is non-empty and every quantity is strictly
// positive. Referenced products are not checked for existence or stock.
func (s *orderService) Create(ctx context.Context, order *model.Order) (*model.OrderReceipt, error) {
	if !s.store.Available() {
		s.logger.Warn().Msg("order rejected, storage unavailable")
		return nil, repository.ErrUnavailable
	}

	if order == nil || len(order.Items) == 0 {
		return nil, model.ErrEmptyOrder
	}

	for i, item := range order.Items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid item quantity")
			return nil, model.ErrInvalidQuantity
		}
	}

	id, err := s.store.Insert(ctx, OrderCollection, order)
	if err != nil {
		s.logger.Error().Err(err).Int("item_count", len(order.Items)).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Int("item_count", len(order.Items)).
		Msg("order received")

	return &model.OrderReceipt{
		OrderID: id,
		Status:  model.OrderStatusReceived,
	}, nil
}
