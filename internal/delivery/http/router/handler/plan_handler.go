package handler

import (
	"log/slog"
	"net/http"

	"mealplan/internal/delivery/http/response"
	"mealplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler holds dependencies for meal plan handlers.
type PlanHandler struct {
	uc     usecase.PlannerUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlannerUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// GenerateDailyPlan runs the generator for one date.
func (h *PlanHandler) GenerateDailyPlan(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	input := &usecase.GenerateDailyPlanInput{}
	if err := bindAndValidate(c, input); err != nil {
		return err
	}
	input.UserID = userID

	result, err := h.uc.GenerateDailyPlan(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Meal plan generated successfully")
}

// GenerateWeekPlan runs the generator for consecutive dates.
func (h *PlanHandler) GenerateWeekPlan(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	input := &usecase.GenerateWeekPlanInput{}
	if err := bindAndValidate(c, input); err != nil {
		return err
	}
	input.UserID = userID

	result, err := h.uc.GenerateWeekPlan(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Week plan generated successfully")
}

// GetMealPlan returns the stored plan of a date.
func (h *PlanHandler) GetMealPlan(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	plan, err := h.uc.GetMealPlan(c.Request().Context(), userID, c.Param("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal plan retrieved successfully")
}

// ListMealPlans returns the stored plans between ?from= and ?to=.
func (h *PlanHandler) ListMealPlans(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	plans, err := h.uc.ListMealPlans(c.Request().Context(), userID, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "Meal plans retrieved successfully")
}

// EstimateGenerationTime predicts how long a generation request would take.
func (h *PlanHandler) EstimateGenerationTime(c echo.Context) error {
	input := &usecase.EstimateInput{}
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	estimate, err := h.uc.EstimateGenerationTime(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, estimate, "Generation time estimated")
}
