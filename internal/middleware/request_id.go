package middleware

import (
	"context"

	"github.com/silverkeytech/Teddy-recommendation-system/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID attaches a trace ID to every request context so service-level
// logs can be correlated. An incoming X-Request-ID is honored.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get("X-Request-ID")
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Request-ID", tid)

			return next(c)
		}
	}
}
