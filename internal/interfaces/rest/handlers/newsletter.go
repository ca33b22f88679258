package handlers

import (
	"net/http"
	"net/url"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
)

type NewsletterResponse struct {
	Success      bool                  `json:"success"`
	Skipped      bool                  `json:"skipped,omitempty"`
	Notification *rest.NotificationDTO `json:"notification,omitempty"`
	Error        *rest.ErrorDetail     `json:"error,omitempty"`
}

func (h *Handlers) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	fields := url.Values{}
	for k, vs := range r.PostForm {
		if k != "email" && k != "action" {
			fields[k] = vs
		}
	}

	result, err := h.newsletterService.Subscribe(r.Context(), services.SubscribeCommand{
		Action: r.PostForm.Get("action"),
		Email:  r.PostForm.Get("email"),
		Fields: fields,
	})

	resp := NewsletterResponse{Success: err == nil}
	if result != nil {
		resp.Skipped = result.Skipped
		if result.Notification != nil {
			n := rest.ToNotificationDTO(*result.Notification)
			resp.Notification = &n
		}
	}

	if err != nil {
		status, errResp := rest.BuildErrorResponse(application.NewUnavailableError(err))
		resp.Error = &errResp.Error
		rest.WriteJSON(w, status, resp, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, resp, h.logger)
}
