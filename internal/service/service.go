package service

import (
	"context"

	"mini-shop/internal/model"
)

// Collection names used by the services.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// List returns every product as a client-ready document, seeding the
	// catalogue with sample data first if it is empty. When storage is
	// unavailable it returns a single static fallback record rather than
	// an error, so the endpoint always succeeds.
	List(ctx context.Context) ([]map[string]any, error)
}

// OrderService defines operations for order intake.
type OrderService interface {
	// Create persists a new order and returns its receipt.
	Create(ctx context.Context, order *model.Order) (*model.OrderReceipt, error)
}

// DiagnosticsService reports storage connectivity for the diagnostics
// endpoint.
type DiagnosticsService interface {
	// Report never fails; internal errors are rendered as descriptive
	// strings inside the report.
	Report(ctx context.Context) *model.DiagnosticsReport
}
