package services

import "net/url"

// AddToCartCommand is a product form submission. Quantity is the raw form
// value and is parsed leniently.
type AddToCartCommand struct {
	VariantID string `json:"id" validate:"required"`
	Quantity  string `json:"quantity"`
}

type UpdateLineCommand struct {
	Line     int `json:"line" validate:"min=1"`
	Quantity int `json:"quantity" validate:"min=0"`
}

type SubscribeCommand struct {
	Action string     `json:"action"`
	Email  string     `json:"email"`
	Fields url.Values `json:"-"`
}
