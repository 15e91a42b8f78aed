package handlers

import (
	"net/http"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ItemHandlers struct {
	itemService services.ItemService
}

func NewItemHandlers(itemService services.ItemService) *ItemHandlers {
	return &ItemHandlers{itemService: itemService}
}

type ItemRequest struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	CategoryID *uuid.UUID      `json:"category_id"`
	CompanyID  *uuid.UUID      `json:"company_id"`
	WeightLbs  decimal.Decimal `json:"weight_lbs"`
	CubicFeet  decimal.Decimal `json:"cubic_feet"`
}

func (r *ItemRequest) toModel() *models.Item {
	return &models.Item{
		SKU:        r.SKU,
		Name:       r.Name,
		CategoryID: r.CategoryID,
		CompanyID:  r.CompanyID,
		WeightLbs:  r.WeightLbs,
		CubicFeet:  r.CubicFeet,
	}
}

func (h *ItemHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	item, err := h.itemService.Create(ctx, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandlers) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	item, err := h.itemService.GetByID(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// GetBySKU looks an item up by its unique SKU.
func (h *ItemHandlers) GetBySKU(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.itemService.GetBySKU(ctx, c.Param("sku"))
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	item, err := h.itemService.Update(ctx, id, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	if err := h.itemService.Delete(ctx, id); err != nil {
		return common.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type ListItemsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *ItemHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	items, err := h.itemService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
	})
}
