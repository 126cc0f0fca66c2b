package model

// OrderStatusReceived is the only status the service ever reports for an
// accepted order.
const OrderStatusReceived = "received"

// Order represents an incoming order payload and the document persisted to
// storage. Quantity positivity is a service-layer rule rather than a schema
// rule, so a zero quantity is rejected as an invalid order, not as a schema
// violation.
type Order struct {
	Items []OrderItem `json:"items" bson:"items" validate:"dive"`
}

// OrderItem is a single line item referencing a product by identifier.
type OrderItem struct {
	ProductID string `json:"product_id" bson:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// OrderReceipt is the response payload returned when an order is accepted.
type OrderReceipt struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
