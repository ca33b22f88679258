package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

type SearchResponse struct {
	Query    string `json:"query"`
	Accepted bool   `json:"accepted"`
}

type NotificationsResponse struct {
	Notifications []rest.NotificationDTO `json:"notifications"`
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	var q string
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &q); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	res := h.searchService.Query(r.Context(), q)
	rest.WriteJSON(w, http.StatusOK, SearchResponse{Query: res.Query, Accepted: res.Accepted}, h.logger)
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	active := h.notifications.Active(r.Context(), time.Now())
	rest.WriteJSON(w, http.StatusOK, NotificationsResponse{
		Notifications: rest.ToNotificationDTOs(active),
	}, h.logger)
}
