package ui_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMobileMenu(t *testing.T) {
	doc := fakeDocument{
		ui.MenuToggleSelector: true,
		ui.MobileMenuSelector: true,
		ui.MenuCloseSelector:  true,
	}
	reg := ui.NewRegistry()
	menu := ui.NewMobileMenu()
	menu.Register(reg, doc)
	ctx := context.Background()

	out := reg.Dispatch(ctx, ui.MenuToggleSelector, ui.Event{Type: ui.EventClick})
	require.Len(t, out, 1)
	assert.True(t, menu.IsOpen())
	assert.Contains(t, out[0].Done, ui.Change{Kind: ui.ChangeAddClass, Target: ui.MobileMenuSelector, Name: "active"})
	assert.Contains(t, out[0].Done, ui.Change{Kind: ui.ChangeSetStyle, Target: "body", Name: "overflow", Value: "hidden"})

	// click on a link inside the drawer
	out = reg.Dispatch(ctx, ui.MobileMenuSelector, ui.Event{Type: ui.EventClick, Target: ".header__mobile-menu a"})
	assert.Empty(t, out[0].Changes())
	assert.True(t, menu.IsOpen())

	// click on the overlay itself
	out = reg.Dispatch(ctx, ui.MobileMenuSelector, ui.Event{Type: ui.EventClick})
	assert.False(t, menu.IsOpen())
	assert.Contains(t, out[0].Done, ui.Change{Kind: ui.ChangeSetStyle, Target: "body", Name: "overflow", Value: ""})

	reg.Dispatch(ctx, ui.MenuToggleSelector, ui.Event{Type: ui.EventClick})
	out = reg.Dispatch(ctx, ui.MenuCloseSelector, ui.Event{Type: ui.EventClick})
	assert.False(t, menu.IsOpen())
	assert.Contains(t, out[0].Done, ui.Change{Kind: ui.ChangeRemoveClass, Target: ui.MobileMenuSelector, Name: "active"})
}

func TestMobileMenu_MissingMenu(t *testing.T) {
	reg := ui.NewRegistry()
	ui.NewMobileMenu().Register(reg, fakeDocument{ui.MenuToggleSelector: true})

	assert.Empty(t, reg.Selectors())
}

func TestLazyImages(t *testing.T) {
	lazy := ui.NewLazyImages(true)
	hero := ui.Image{Selector: "#hero", DataSrc: "/hero.jpg"}
	thumb := ui.Image{Selector: "#thumb", DataSrc: "/thumb.jpg"}

	assert.Equal(t, 2, lazy.Observe(hero, thumb, ui.Image{Selector: "#plain"}))

	changes := lazy.Intersect([]ui.IntersectionEntry{
		{Image: hero, IsIntersecting: true},
		{Image: thumb, IsIntersecting: false},
	})
	assert.Equal(t, []ui.Change{
		{Kind: ui.ChangeSetAttr, Target: "#hero", Name: "src", Value: "/hero.jpg"},
		{Kind: ui.ChangeRemoveClass, Target: "#hero", Name: "lazy"},
	}, changes)
	assert.Equal(t, 1, lazy.Observed())

	// unobserved after loading
	assert.Empty(t, lazy.Intersect([]ui.IntersectionEntry{{Image: hero, IsIntersecting: true}}))
}

func TestLazyImages_Unsupported(t *testing.T) {
	lazy := ui.NewLazyImages(false)

	assert.Equal(t, 0, lazy.Observe(ui.Image{Selector: "#hero", DataSrc: "/hero.jpg"}))
	assert.Empty(t, lazy.Intersect([]ui.IntersectionEntry{{Image: ui.Image{Selector: "#hero"}, IsIntersecting: true}}))
}

func TestSmoothScroll(t *testing.T) {
	s := ui.NewSmoothScroll(fakeDocument{"#reviews": true})
	ctx := context.Background()

	out := s.OnClick(ctx, ui.Event{Type: ui.EventClick, Href: "#reviews"})
	assert.True(t, out.PreventDefault)
	assert.Equal(t, []ui.Change{{Kind: ui.ChangeScrollIntoView, Target: "#reviews", Name: "behavior", Value: "smooth"}}, out.Done)

	out = s.OnClick(ctx, ui.Event{Type: ui.EventClick, Href: "#"})
	assert.False(t, out.PreventDefault)
	assert.Empty(t, out.Changes())

	out = s.OnClick(ctx, ui.Event{Type: ui.EventClick, Href: "#missing"})
	assert.False(t, out.PreventDefault)
}

type recordingSearcher struct {
	mu      sync.Mutex
	queries []string
}

func (r *recordingSearcher) Query(_ context.Context, raw string) services.SearchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, raw)
	return services.SearchResult{Query: raw, Accepted: len(raw) >= 2}
}

func (r *recordingSearcher) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func TestSearchBinding_Debounces(t *testing.T) {
	searcher := &recordingSearcher{}
	b := ui.NewSearchBinding(context.Background(), searcher, 10*time.Millisecond, nil)
	defer b.Close()

	for _, v := range []string{"s", "sh", "sho", "shoe"} {
		b.OnInput(context.Background(), ui.Event{Type: ui.EventInput, Value: v})
	}

	require.Eventually(t, func() bool { return len(searcher.seen()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"shoe"}, searcher.seen())
}

func TestInit_BindsPage(t *testing.T) {
	cart := &mockCart{}
	b := &badge{}
	cart.On("RefreshCount", mock.Anything, b).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	theme := ui.Init(ctx, ui.Deps{
		Cart:       cart,
		Newsletter: &mockSubscriber{},
		Search:     &recordingSearcher{},
		Badge:      b,
		Document: fakeDocument{
			ui.MenuToggleSelector: true,
			ui.MobileMenuSelector: true,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	defer theme.Close()

	assert.ElementsMatch(t, []string{
		ui.ProductFormSelector,
		ui.SearchInputSelector,
		ui.MenuToggleSelector,
		ui.MobileMenuSelector,
		ui.NewsletterSelector,
		ui.AnchorLinkSelector,
	}, theme.Registry.Selectors())
	assert.NotNil(t, theme.Lazy)
	cart.AssertExpectations(t)
}

func TestInit_RefreshFailsWithoutLogger(t *testing.T) {
	cart := &mockCart{}
	cart.On("RefreshCount", mock.Anything, nil).Return(errors.New("storefront down")).Once()

	var theme *ui.Theme
	require.NotPanics(t, func() {
		theme = ui.Init(context.Background(), ui.Deps{
			Cart:       cart,
			Newsletter: &mockSubscriber{},
			Search:     &recordingSearcher{},
			Document:   fakeDocument{},
		})
	})
	defer theme.Close()

	assert.Contains(t, theme.Registry.Selectors(), ui.ProductFormSelector)
	cart.AssertExpectations(t)
}
