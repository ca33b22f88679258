package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/money"
	"github.com/DanielPopoola/mdamascus-theme/internal/notify"
)

// Handlers serves the theme script's endpoints
type Handlers struct {
	formatter         *money.Formatter
	cartService       *services.CartService
	newsletterService *services.NewsletterService
	searchService     *services.SearchService
	notifications     *notify.Queue
	logger            *slog.Logger
}

func NewHandlers(
	formatter *money.Formatter,
	cartService *services.CartService,
	newsletterService *services.NewsletterService,
	searchService *services.SearchService,
	notifications *notify.Queue,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		formatter:         formatter,
		cartService:       cartService,
		newsletterService: newsletterService,
		searchService:     searchService,
		notifications:     notifications,
		logger:            logger,
	}
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /theme/money", h.FormatMoney)
	mux.HandleFunc("POST /theme/cart/add", h.AddToCart)
	mux.HandleFunc("POST /theme/cart/change", h.ChangeCartLine)
	mux.HandleFunc("GET /theme/cart/count", h.CartCount)
	mux.HandleFunc("POST /theme/newsletter", h.SubscribeNewsletter)
	mux.HandleFunc("GET /theme/search", h.Search)
	mux.HandleFunc("GET /theme/notifications", h.ListNotifications)
}
