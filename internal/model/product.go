package model

// Product represents a catalogue product payload. The storage layer assigns
// document identity on insert; products are never updated afterwards.
type Product struct {
	Title       string  `json:"title" bson:"title" validate:"required"`
	Description string  `json:"description" bson:"description" validate:"required"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category" validate:"required"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
	Image       string  `json:"image" bson:"image" validate:"required,url"`
}
