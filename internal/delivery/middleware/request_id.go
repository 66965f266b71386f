// Package middleware holds the echo middleware shared by the API and the worker.
package middleware

import (
	"log/slog"

	deliverycontext "mealplan/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDParam is the path parameter of profile-scoped routes.
const userIDParam = "userId"

// RequestIDMiddleware tags each request with an ID and a request-scoped logger. On
// profile-scoped routes the logger and the context also carry the user ID.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process runs after routing, so path parameters are already resolved.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		reqLogger := m.logger.With(slog.String("request_id", requestID))

		// Malformed ids are left for the handler to reject.
		if userID, err := uuid.Parse(c.Param(userIDParam)); err == nil {
			ctx = deliverycontext.WithUserID(ctx, userID)
			reqLogger = reqLogger.With(slog.String("user_id", userID.String()))
		}

		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
