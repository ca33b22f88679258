package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/api"
	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/config"
	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/ui"
	"github.com/DanielPopoola/mdamascus-theme/internal/money"
	"github.com/DanielPopoola/mdamascus-theme/internal/notify"
	"github.com/DanielPopoola/mdamascus-theme/internal/worker"
)

type app struct {
	handler http.Handler
	sweeper *worker.NotificationSweeper

	cart           *services.CartService
	newsletter     *services.NewsletterService
	search         *services.SearchService
	searchDebounce time.Duration
	logger         *slog.Logger
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	formatter := money.NewFormatter(cfg.Money.DefaultFormat)
	if err := formatter.Validate(""); err != nil {
		return nil, fmt.Errorf("default money format: %w", err)
	}

	client, err := storefront.NewClient(cfg.Storefront)
	if err != nil {
		return nil, err
	}
	retryClient := storefront.NewRetryClient(client, cfg.Retry)

	queue := notify.NewQueue(cfg.Notifications.TTL)

	cartService := services.NewCartService(retryClient, queue, logger)
	newsletterService := services.NewNewsletterService(retryClient, queue, cfg.Storefront.NewsletterURL, logger)
	searchService := services.NewSearchService(cfg.Search.MinQueryLength, logger)

	h := handlers.NewHandlers(
		formatter,
		cartService,
		newsletterService,
		searchService,
		queue,
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.Register(mux)

	doc, err := api.Spec()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return nil, err
	}

	handler := validate(mux)
	handler = middleware.ShopperSession(cfg.Notifications.SessionCookie, cfg.Storefront.ForwardCookies)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)

	return &app{
		handler:        handler,
		sweeper:        worker.NewNotificationSweeper(queue, cfg.Notifications.SweepInterval, logger),
		cart:           cartService,
		newsletter:     newsletterService,
		search:         searchService,
		searchDebounce: cfg.Search.Debounce,
		logger:         logger,
	}, nil
}

// bindPage binds the theme behaviors for one page rendered as doc.
func (a *app) bindPage(ctx context.Context, doc ui.Document, badge application.CountSink, onSearch func(services.SearchResult)) *ui.Theme {
	return ui.Init(ctx, ui.Deps{
		Cart:                  a.cart,
		Newsletter:            a.newsletter,
		Search:                a.search,
		Badge:                 badge,
		Document:              doc,
		SearchDebounce:        a.searchDebounce,
		IntersectionSupported: true,
		OnSearch:              onSearch,
		Logger:                a.logger,
	})
}
