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

type WarehouseHandlers struct {
	warehouseService services.WarehouseService
	historyService   services.InventoryHistoryService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService, historyService services.InventoryHistoryService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseService: warehouseService, historyService: historyService}
}

type WarehouseRequest struct {
	Name                     string              `json:"name"`
	Address                  *string             `json:"address"`
	City                     *string             `json:"city"`
	State                    *string             `json:"state"`
	Zip                      *string             `json:"zip"`
	ManagerEmployeeID        *uuid.UUID          `json:"manager_employee_id"`
	MaximumCapacityCubicFeet decimal.NullDecimal `json:"maximum_capacity_cubic_feet"`
}

func (r *WarehouseRequest) toModel() *models.Warehouse {
	return &models.Warehouse{
		Name:                     r.Name,
		Address:                  r.Address,
		City:                     r.City,
		State:                    r.State,
		Zip:                      r.Zip,
		ManagerEmployeeID:        r.ManagerEmployeeID,
		MaximumCapacityCubicFeet: r.MaximumCapacityCubicFeet,
	}
}

func (h *WarehouseHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req WarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	warehouse, err := h.warehouseService.Create(ctx, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, warehouse)
}

func (h *WarehouseHandlers) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	warehouse, err := h.warehouseService.GetByID(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, warehouse)
}

func (h *WarehouseHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	var req WarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	warehouse, err := h.warehouseService.Update(ctx, id, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, warehouse)
}

func (h *WarehouseHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	if err := h.warehouseService.Delete(ctx, id); err != nil {
		return common.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type ListWarehousesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *WarehouseHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListWarehousesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	warehouses, err := h.warehouseService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouses": warehouses,
	})
}

// GetCapacity reports how full one warehouse is.
func (h *WarehouseHandlers) GetCapacity(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	capacity, err := h.warehouseService.GetCapacity(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, capacity)
}

// GetAllCapacities reports occupancy for every warehouse in one call.
func (h *WarehouseHandlers) GetAllCapacities(c echo.Context) error {
	ctx := c.Request().Context()

	capacities, err := h.warehouseService.GetAllCapacities(ctx)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"capacities": capacities,
	})
}

// GetHistory returns the warehouse's ledger entries, optionally bounded by an
// inclusive start/end date range.
func (h *WarehouseHandlers) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}
	start, err := common.ParseTimeParam(c.QueryParam("start"), "start")
	if err != nil {
		return common.HTTPError(err)
	}
	end, err := common.ParseTimeParam(c.QueryParam("end"), "end")
	if err != nil {
		return common.HTTPError(err)
	}

	if _, err := h.warehouseService.GetByID(ctx, id); err != nil {
		return common.HTTPError(err)
	}

	entries, err := h.historyService.FindByWarehouseAndDateRange(ctx, id, start, end)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": entries,
	})
}
