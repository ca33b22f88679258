package handlers

import (
	"net/http"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
	"github.com/DanielPopoola/mdamascus-theme/internal/money"
	"github.com/oapi-codegen/runtime"
)

type MoneyResponse struct {
	Formatted string `json:"formatted"`
}

func (h *Handlers) FormatMoney(w http.ResponseWriter, r *http.Request) {
	var amount, format string

	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "amount", query, &amount); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "format", query, &format); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	// A missing amount renders as 0; an empty one is zero cents.
	var formatted string
	var err error
	if query.Has("amount") {
		formatted, err = h.formatter.FormatString(amount, format)
	} else {
		formatted, err = h.formatter.Format(money.Amount{}, format)
	}
	if err != nil {
		rest.WriteError(w, application.NewInvalidTemplateError(err), h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, MoneyResponse{Formatted: formatted}, h.logger)
}
