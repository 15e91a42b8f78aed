package handlers

import (
	"net/http"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/services"

	"github.com/labstack/echo/v4"
)

type CategoryHandlers struct {
	categoryService services.CategoryService
}

func NewCategoryHandlers(categoryService services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	category, err := h.categoryService.Create(ctx, &models.Category{Name: req.Name})
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandlers) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	category, err := h.categoryService.Update(ctx, id, &models.Category{Name: req.Name})
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	if err := h.categoryService.Delete(ctx, id); err != nil {
		return common.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type ListCategoriesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *CategoryHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	categories, err := h.categoryService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
