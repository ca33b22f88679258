package domain

import (
	"time"

	"github.com/google/uuid"
)

// Level is the visual style of a notification banner.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Messages shown by the theme's forms.
const (
	MsgAddedToCart        = "Product added to cart!"
	MsgAddToCartFailed    = "Error adding product to cart. Please try again."
	MsgSubscribed         = "Successfully subscribed to newsletter!"
	MsgSubscriptionFailed = "Error subscribing to newsletter. Please try again."
)

// DefaultNotificationTTL is how long a banner stays on screen.
const DefaultNotificationTTL = 3 * time.Second

// Color returns the banner background for the level.
func (l Level) Color() string {
	switch l {
	case LevelSuccess:
		return "#28a745"
	case LevelError:
		return "#dc3545"
	default:
		return "#007bff"
	}
}

// Notification is a transient, auto-dismissing message banner.
type Notification struct {
	ID        string
	Message   string
	Level     Level
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewNotification(message string, level Level, now time.Time, ttl time.Duration) Notification {
	if level == "" {
		level = LevelInfo
	}
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Level:     level,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ClassName is the CSS class list of the rendered banner.
func (n Notification) ClassName() string {
	return "message message--" + string(n.Level)
}

func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}
