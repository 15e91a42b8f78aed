package handlers

import (
	"net/http"

	"stocktrail/internal/common"
	"stocktrail/internal/services"

	"github.com/labstack/echo/v4"
)

// WarehouseItemsHandlers exposes read access to the derived quantities.
// There is deliberately no write endpoint here: quantities change only
// through inventory history entries.
type WarehouseItemsHandlers struct {
	warehouseItemsService services.WarehouseItemsService
}

func NewWarehouseItemsHandlers(warehouseItemsService services.WarehouseItemsService) *WarehouseItemsHandlers {
	return &WarehouseItemsHandlers{warehouseItemsService: warehouseItemsService}
}

type ListWarehouseItemsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *WarehouseItemsHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListWarehouseItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	items, err := h.warehouseItemsService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouse_items": items,
	})
}

func (h *WarehouseItemsHandlers) Get(c echo.Context) error {
	ctx := c.Request().Context()

	warehouseID, err := common.ParseUUID(c.Param("warehouse_id"), "warehouse_id")
	if err != nil {
		return common.HTTPError(err)
	}
	itemID, err := common.ParseUUID(c.Param("item_id"), "item_id")
	if err != nil {
		return common.HTTPError(err)
	}

	wi, err := h.warehouseItemsService.Get(ctx, warehouseID, itemID)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, wi)
}

// Search finds items by name or SKU and reports their stock per warehouse
// plus the total across warehouses.
func (h *WarehouseItemsHandlers) Search(c echo.Context) error {
	ctx := c.Request().Context()

	summaries, err := h.warehouseItemsService.SearchInventoryByItem(ctx, c.QueryParam("q"))
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": summaries,
	})
}
