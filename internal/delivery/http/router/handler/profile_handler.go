package handler

import (
	"log/slog"
	"net/http"

	"mealplan/internal/delivery/http/response"
	"mealplan/internal/domain/entity"
	"mealplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the stored profile of a user.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// SaveProfile creates or replaces the profile of a user. The path id wins over any id in the body.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var profile entity.UserProfile
	if err := c.Bind(&profile); err != nil {
		return errors.WithStack(bindError(err))
	}
	profile.ID = userID

	saved, err := h.uc.SaveProfile(c.Request().Context(), &profile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Profile saved successfully")
}

// ValidateProfile reports whether the stored profile is ready for generation.
func (h *ProfileHandler) ValidateProfile(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	report, err := h.uc.ValidateProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Profile validated")
}

// GetNutritionTargets returns daily and per-meal targets for ?date= (today when absent).
func (h *ProfileHandler) GetNutritionTargets(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	targets, err := h.uc.GetNutritionTargets(c.Request().Context(), userID, c.QueryParam("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, targets, "Nutrition targets calculated")
}
