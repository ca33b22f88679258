package rest

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/mdamascus-theme/internal/application"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BuildErrorResponse maps an error onto its status and response body
func BuildErrorResponse(err error) (int, ErrorResponse) {
	return application.ToHTTPStatus(err), ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: err.Error(),
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", response.Error.Code,
			"category", application.CategorizeError(err),
			"error", err,
		)
	}

	WriteJSON(w, statusCode, response, logger)
}
