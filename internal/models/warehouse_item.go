package models

import (
	"time"

	"github.com/google/uuid"
)

// WarehouseItem is the materialized quantity for one (warehouse, item) pair.
// It is derived state: it must always equal the net effect of the inventory
// history entries touching the pair, and is only ever written through the
// quantity adjuster in the warehouse-items service.
type WarehouseItem struct {
	WarehouseID uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	ItemID      uuid.UUID `json:"item_id" db:"item_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// ItemStockRow is one search-result row: an item's stock in one warehouse.
type ItemStockRow struct {
	ItemID        uuid.UUID `json:"item_id"`
	SKU           string    `json:"sku"`
	ItemName      string    `json:"item_name"`
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Quantity      int       `json:"quantity"`
}

// ItemWarehouseQuantity is one warehouse leg of an inventory summary.
type ItemWarehouseQuantity struct {
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Quantity      int       `json:"quantity"`
}

// ItemInventorySummary aggregates an item's stock across all warehouses.
type ItemInventorySummary struct {
	ItemID        uuid.UUID               `json:"item_id"`
	SKU           string                  `json:"sku"`
	Name          string                  `json:"name"`
	TotalQuantity int                     `json:"total_quantity"`
	Locations     []ItemWarehouseQuantity `json:"locations"`
}
