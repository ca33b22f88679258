package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
)

type CountRefresher interface {
	RefreshCount(ctx context.Context, sink application.CountSink) error
}

// Deps are the collaborators a page needs. Badge may be nil on pages
// without a cart count.
type Deps struct {
	Cart interface {
		CartAdder
		CountRefresher
	}
	Newsletter            Subscriber
	Search                Searcher
	Badge                 application.CountSink
	Document              Document
	SearchDebounce        time.Duration
	IntersectionSupported bool
	OnSearch              func(services.SearchResult)
	Logger                *slog.Logger
}

// Theme is a page with every behavior bound.
type Theme struct {
	Registry *Registry
	Menu     *MobileMenu
	Lazy     *LazyImages
	search   *SearchBinding
}

// Init binds every behavior and refreshes the cart badge. ctx bounds the
// page's lifetime. A nil Logger uses slog.Default.
func Init(ctx context.Context, deps Deps) *Theme {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	reg := NewRegistry()

	reg.Register(ProductFormSelector, NewProductFormBinding(deps.Cart, deps.Badge))

	search := NewSearchBinding(ctx, deps.Search, deps.SearchDebounce, deps.OnSearch)
	reg.Register(SearchInputSelector, search)

	menu := NewMobileMenu()
	menu.Register(reg, deps.Document)

	reg.Register(NewsletterSelector, NewNewsletterBinding(deps.Newsletter))

	lazy := NewLazyImages(deps.IntersectionSupported)

	reg.Register(AnchorLinkSelector, NewSmoothScroll(deps.Document))

	if err := deps.Cart.RefreshCount(ctx, deps.Badge); err != nil {
		deps.Logger.Warn("initial cart count failed", "error", err)
	}

	return &Theme{
		Registry: reg,
		Menu:     menu,
		Lazy:     lazy,
		search:   search,
	}
}

// Close stops pending debounced work.
func (t *Theme) Close() {
	t.search.Close()
}
