package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
)

type CartAddResponse struct {
	Success      bool                  `json:"success"`
	Notification *rest.NotificationDTO `json:"notification,omitempty"`
	ItemCount    *int                  `json:"item_count,omitempty"`
	Error        *rest.ErrorDetail     `json:"error,omitempty"`
}

type CartResponse struct {
	Success    bool   `json:"success"`
	ItemCount  int    `json:"item_count"`
	TotalPrice int64  `json:"total_price"`
	Currency   string `json:"currency"`
}

type CountResponse struct {
	ItemCount int `json:"item_count"`
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	cmd := services.AddToCartCommand{
		VariantID: r.PostForm.Get("id"),
		Quantity:  r.PostForm.Get("quantity"),
	}

	result, err := h.cartService.AddToCart(r.Context(), cmd)

	resp := CartAddResponse{Success: err == nil}
	if result != nil {
		n := rest.ToNotificationDTO(result.Notification)
		resp.Notification = &n
		if result.CountKnown {
			count := result.ItemCount
			resp.ItemCount = &count
		}
	}

	if err != nil {
		status, errResp := rest.BuildErrorResponse(err)
		resp.Error = &errResp.Error
		rest.WriteJSON(w, status, resp, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, resp, h.logger)
}

type changeLineRequest struct {
	Line     int `json:"line"`
	Quantity int `json:"quantity"`
}

func (h *Handlers) ChangeCartLine(w http.ResponseWriter, r *http.Request) {
	var req changeLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	cart, err := h.cartService.UpdateLine(r.Context(), services.UpdateLineCommand{
		Line:     req.Line,
		Quantity: req.Quantity,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CartResponse{
		Success:    true,
		ItemCount:  cart.ItemCount,
		TotalPrice: cart.TotalPrice,
		Currency:   cart.Currency,
	}, h.logger)
}

func (h *Handlers) CartCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.cartService.ItemCount(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CountResponse{ItemCount: count}, h.logger)
}
