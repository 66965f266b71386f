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

// CatalogHandler holds dependencies for catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *CatalogHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.uc.ListRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

func (h *CatalogHandler) ListFoods(c echo.Context) error {
	foods, err := h.uc.ListFoods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "Foods retrieved successfully")
}

// ImportCatalog upserts the recipes and foods of the request body.
func (h *CatalogHandler) ImportCatalog(c echo.Context) error {
	var catalog entity.Catalog
	if err := c.Bind(&catalog); err != nil {
		return errors.WithStack(bindError(err))
	}

	summary, err := h.uc.ImportCatalog(c.Request().Context(), &catalog)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, summary, "Catalog imported successfully")
}
