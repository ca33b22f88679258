package storefront

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
)

// Session carries one shopper's platform cookies across the calls made for
// a single theme request. Cookies the platform sets are applied to later
// calls in the same session and kept so they can be relayed to the shopper.
type Session struct {
	mu       sync.Mutex
	cookies  []*http.Cookie
	received []*http.Cookie
}

type sessionKey struct{}

// NewSession starts a session from the cookies the shopper sent. Only cookies
// whose name is in forward are kept; an empty forward list keeps none.
func NewSession(cookies []*http.Cookie, forward []string) *Session {
	s := &Session{}
	for _, c := range cookies {
		if slices.Contains(forward, c.Name) {
			s.cookies = append(s.cookies, &http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	return s
}

// WithSession returns a context whose storefront calls use s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session attached to ctx, or nil.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// Key identifies the shopper's platform cart. Sessions without cookies share
// the empty key.
func (s *Session) Key() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := make([]string, 0, len(s.cookies))
	for _, c := range s.cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	slices.Sort(parts)
	return strings.Join(parts, ";")
}

// Received returns the cookies the platform set during the session.
func (s *Session) Received() []*http.Cookie {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.received)
}

func (s *Session) attach(req *http.Request) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
}

func (s *Session) record(resp *http.Response) {
	if s == nil {
		return
	}
	set := resp.Cookies()
	if len(set) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range set {
		s.received = upsertCookie(s.received, c)

		expired := c.MaxAge < 0 || c.Value == ""
		if expired {
			s.cookies = slices.DeleteFunc(s.cookies, func(old *http.Cookie) bool { return old.Name == c.Name })
			continue
		}
		s.cookies = upsertCookie(s.cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
}

func upsertCookie(list []*http.Cookie, c *http.Cookie) []*http.Cookie {
	for i, old := range list {
		if old.Name == c.Name {
			list[i] = c
			return list
		}
	}
	return append(list, c)
}
