package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
)

type SubscribeResult struct {
	// Skipped is set when there was no email to submit.
	Skipped      bool
	Notification *domain.Notification
}

type NewsletterService struct {
	client        storefront.Client
	notifier      application.Notifier
	defaultAction string
	logger        *slog.Logger
}

func NewNewsletterService(client storefront.Client, notifier application.Notifier, defaultAction string, logger *slog.Logger) *NewsletterService {
	return &NewsletterService{
		client:        client,
		notifier:      notifier,
		defaultAction: defaultAction,
		logger:        logger,
	}
}

// Subscribe posts the newsletter form. An empty email does nothing.
func (s *NewsletterService) Subscribe(ctx context.Context, cmd SubscribeCommand) (*SubscribeResult, error) {
	if cmd.Email == "" {
		return &SubscribeResult{Skipped: true}, nil
	}

	action := strings.TrimSpace(cmd.Action)
	if action == "" {
		action = s.defaultAction
	}

	fields := url.Values{}
	for k, vs := range cmd.Fields {
		fields[k] = append([]string(nil), vs...)
	}
	fields.Set("email", cmd.Email)

	err := s.client.Subscribe(ctx, storefront.SubscribeRequest{Action: action, Fields: fields})
	if err != nil {
		s.logger.Error("newsletter subscription error", "action", action, "error", err)
		n := s.notifier.Push(ctx, domain.MsgSubscriptionFailed, domain.LevelError)
		return &SubscribeResult{Notification: &n}, fmt.Errorf("subscribe: %w", err)
	}

	n := s.notifier.Push(ctx, domain.MsgSubscribed, domain.LevelSuccess)
	return &SubscribeResult{Notification: &n}, nil
}
