package money

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPlaceholder is returned when a template carries no {{ keyword }} token.
	ErrNoPlaceholder = errors.New("no placeholder")

	// ErrUnknownKeyword marks a placeholder whose keyword is not a recognized
	// format. Format never returns it; the placeholder renders empty instead.
	ErrUnknownKeyword = errors.New("unknown keyword")
)

// FormatError describes why a template could not be used.
type FormatError struct {
	Template string
	Keyword  string
	Err      error
}

func (e *FormatError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("format %q: %v %q", e.Template, e.Err, e.Keyword)
	}
	return fmt.Sprintf("format %q: %v", e.Template, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
