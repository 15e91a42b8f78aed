package handlers

import (
	"net/http"
	"time"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InventoryHistoryHandlers exposes the inventory ledger over HTTP.
type InventoryHistoryHandlers struct {
	historyService services.InventoryHistoryService
}

func NewInventoryHistoryHandlers(historyService services.InventoryHistoryService) *InventoryHistoryHandlers {
	return &InventoryHistoryHandlers{historyService: historyService}
}

// InventoryHistoryRequest is the create/update payload. QuantityChange is a
// positive magnitude; direction is carried by the warehouse references.
type InventoryHistoryRequest struct {
	ItemID                uuid.UUID  `json:"item_id"`
	FromWarehouseID       *uuid.UUID `json:"from_warehouse_id"`
	ToWarehouseID         *uuid.UUID `json:"to_warehouse_id"`
	QuantityChange        int        `json:"quantity_change"`
	TransactionType       string     `json:"transaction_type"`
	Reason                *string    `json:"reason"`
	OccurredAt            *time.Time `json:"occurred_at"`
	PerformedByEmployeeID *uuid.UUID `json:"performed_by_employee_id"`
}

func (r *InventoryHistoryRequest) toModel() *models.InventoryHistory {
	entry := &models.InventoryHistory{
		ItemID:                r.ItemID,
		FromWarehouseID:       r.FromWarehouseID,
		ToWarehouseID:         r.ToWarehouseID,
		QuantityChange:        r.QuantityChange,
		TransactionType:       r.TransactionType,
		Reason:                r.Reason,
		PerformedByEmployeeID: r.PerformedByEmployeeID,
	}
	if r.OccurredAt != nil {
		entry.OccurredAt = *r.OccurredAt
	}
	return entry
}

func (h *InventoryHistoryHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req InventoryHistoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	entry, err := h.historyService.Create(ctx, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *InventoryHistoryHandlers) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	entry, err := h.historyService.GetByID(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *InventoryHistoryHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	var req InventoryHistoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	entry, err := h.historyService.Update(ctx, id, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *InventoryHistoryHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	if err := h.historyService.Delete(ctx, id); err != nil {
		return common.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type ListHistoryRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *InventoryHistoryHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListHistoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	entries, err := h.historyService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": entries,
	})
}

// Recent returns the latest ledger activity across all warehouses, for
// dashboards.
func (h *InventoryHistoryHandlers) Recent(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.historyService.FindRecentActivities(ctx)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": entries,
	})
}
