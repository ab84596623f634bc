package middleware

import (
	"net/http"

	"offerLens/pkg/logger"

	jsonres "offerLens/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler. Anything a handler did not map
// itself becomes a uniform JSON error body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "error", err, "path", c.Path())
	}

	if writeErr := c.JSON(status, jsonres.Error(http.StatusText(status), message, nil)); writeErr != nil {
		logger.Error("Failed to write error response", "error", writeErr)
	}
}
