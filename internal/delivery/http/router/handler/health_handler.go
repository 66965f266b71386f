// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"mealplan/internal/delivery/http/response"
	domainerrors "mealplan/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// userIDParam reads the :userId path parameter.
func userIDParam(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("userId must be a UUID")
	}

	return userID, nil
}

// bindAndValidate decodes the request body into input and runs the struct validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return bindError(err)
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// bindError reports a body that could not be decoded.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return domainerrors.ErrValidationFailed.WithDetails(msg)
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded")
}
