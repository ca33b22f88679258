package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
	"github.com/DanielPopoola/mdamascus-theme/internal/interfaces/rest"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// OpenAPIValidator rejects requests that do not match doc with 400. Routes
// doc does not describe pass through unchecked.
func OpenAPIValidator(doc *openapi3.T, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	// match any host
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Debug("request failed validation", "path", r.URL.Path, "error", err)
				rest.WriteError(w, application.NewInvalidInputError(err), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
