package middleware

import (
	"net/http"

	"github.com/DanielPopoola/mdamascus-theme/internal/infrastructure/storefront"
	"github.com/DanielPopoola/mdamascus-theme/internal/notify"
	"github.com/google/uuid"
)

// cookieRelay copies the cookies the platform set during the request onto
// the response before the header is written.
type cookieRelay struct {
	http.ResponseWriter
	session *storefront.Session
	relayed bool
}

func (c *cookieRelay) relay() {
	if c.relayed {
		return
	}
	c.relayed = true

	for _, ck := range c.session.Received() {
		out := *ck
		// The platform scopes its cookies to its own host.
		out.Domain = ""
		http.SetCookie(c.ResponseWriter, &out)
	}
}

func (c *cookieRelay) WriteHeader(code int) {
	c.relay()
	c.ResponseWriter.WriteHeader(code)
}

func (c *cookieRelay) Write(b []byte) (int, error) {
	c.relay()
	return c.ResponseWriter.Write(b)
}

func (c *cookieRelay) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}

// ShopperSession ties a request to one browser. Notifications are scoped to
// the sessionCookie value, assigned on first visit. Cookies named in forward
// go to the platform on storefront calls and whatever the platform sets
// comes back to the browser.
func ShopperSession(sessionCookie string, forward []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var owner string
			if c, err := r.Cookie(sessionCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					owner = c.Value
				}
			}
			if owner == "" {
				owner = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    owner,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			session := storefront.NewSession(r.Cookies(), forward)
			ctx := storefront.WithSession(r.Context(), session)
			ctx = notify.WithOwner(ctx, owner)

			relay := &cookieRelay{ResponseWriter: w, session: session}
			next.ServeHTTP(relay, r.WithContext(ctx))
			// handlers that never write still get their cookies on the implicit 200
			relay.relay()
		})
	}
}
