package storefront

import (
	"encoding/json"
	"net/url"
)

type LineItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type AddItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

type AddItemsResponse struct {
	Items []LineItem `json:"items"`
}

type ChangeLineRequest struct {
	Line     int `json:"line"`
	Quantity int `json:"quantity"`
}

type LineItem struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variant_id"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	LinePrice int64  `json:"line_price"`
}

type Cart struct {
	Token      string     `json:"token"`
	ItemCount  int        `json:"item_count"`
	TotalPrice int64      `json:"total_price"`
	Currency   string     `json:"currency"`
	Items      []LineItem `json:"items"`
}

// SubscribeRequest is a newsletter form submission. Fields are posted
// form-encoded to Action, which may be relative to the storefront origin.
type SubscribeRequest struct {
	Action string
	Fields url.Values
}

// errorEnvelope is the platform's JSON error body. Status is a number for
// cart errors (422) and a string token for others.
type errorEnvelope struct {
	Status      json.RawMessage `json:"status"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

func (e errorEnvelope) statusCode() (int, bool) {
	var n int
	if err := json.Unmarshal(e.Status, &n); err != nil {
		return 0, false
	}
	return n, true
}

func (e errorEnvelope) statusToken() string {
	var s string
	if err := json.Unmarshal(e.Status, &s); err != nil {
		return ""
	}
	return s
}
