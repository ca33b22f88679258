package services

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultMinQueryLength is the shortest query worth searching for.
const DefaultMinQueryLength = 2

type SearchResult struct {
	Query    string
	Accepted bool
}

type SearchService struct {
	minLength int
	logger    *slog.Logger
}

func NewSearchService(minLength int, logger *slog.Logger) *SearchService {
	if minLength <= 0 {
		minLength = DefaultMinQueryLength
	}
	return &SearchService{minLength: minLength, logger: logger}
}

// Query trims raw and accepts it when it is long enough. Suggestions are not
// fetched; an accepted query is only logged.
func (s *SearchService) Query(ctx context.Context, raw string) SearchResult {
	q := strings.TrimSpace(raw)
	if utf8.RuneCountInString(q) < s.minLength {
		return SearchResult{Query: q}
	}

	s.logger.InfoContext(ctx, "searching", "query", q)
	return SearchResult{Query: q, Accepted: true}
}
