package ui

import (
	"context"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/application/services"
	"github.com/DanielPopoola/mdamascus-theme/internal/shared/timing"
)

const SearchInputSelector = ".header__search-input"

// DefaultSearchDebounce is the pause after typing before a query is run.
const DefaultSearchDebounce = 300 * time.Millisecond

type Searcher interface {
	Query(ctx context.Context, raw string) services.SearchResult
}

// SearchBinding runs the search once typing pauses. Results go to onResult
// when it is set.
type SearchBinding struct {
	NopBinding
	debouncer *timing.Debouncer[string]
}

// NewSearchBinding runs queries with ctx, which should outlive individual
// input events.
func NewSearchBinding(ctx context.Context, search Searcher, wait time.Duration, onResult func(services.SearchResult)) *SearchBinding {
	if wait <= 0 {
		wait = DefaultSearchDebounce
	}
	return &SearchBinding{
		debouncer: timing.Debounce(func(q string) {
			if ctx.Err() != nil {
				return
			}
			res := search.Query(ctx, q)
			if onResult != nil {
				onResult(res)
			}
		}, wait),
	}
}

func (b *SearchBinding) OnInput(_ context.Context, ev Event) Outcome {
	b.debouncer.Call(ev.Value)
	return Outcome{}
}

// Close drops a pending query.
func (b *SearchBinding) Close() {
	b.debouncer.Stop()
}
