package middleware

import (
	"context"

	"offerLens/business/decision"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const traceHeader = "X-Trace-Id"

// TraceMiddleware stamps every request with a trace id, reusing the caller's
// header when present. The id travels on the request context and echoes back
// in the response header.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(traceHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), decision.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(traceHeader, traceID)

			return next(c)
		}
	}
}
