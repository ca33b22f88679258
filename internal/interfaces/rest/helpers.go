package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
)

type NotificationDTO struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	ClassName string    `json:"class_name"`
	Color     string    `json:"color"`
	ExpiresAt time.Time `json:"expires_at"`
}

func ToNotificationDTO(n domain.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Message:   n.Message,
		Level:     string(n.Level),
		ClassName: n.ClassName(),
		Color:     n.Level.Color(),
		ExpiresAt: n.ExpiresAt,
	}
}

func ToNotificationDTOs(ns []domain.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(ns))
	for _, n := range ns {
		out = append(out, ToNotificationDTO(n))
	}
	return out
}

func WriteJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}
