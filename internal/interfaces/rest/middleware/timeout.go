package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
)

// timeoutBody is the error envelope written when a handler runs past its deadline.
func timeoutBody() string {
	_, resp := rest.BuildErrorResponse(application.NewTimeoutError())
	body, err := json.Marshal(resp)
	if err != nil {
		return application.ErrCodeTimeout
	}
	return string(body)
}

func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body := timeoutBody()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler := http.TimeoutHandler(next, timeout, body)
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
