package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Warehouse struct {
	ID                       uuid.UUID           `json:"id" db:"id"`
	Name                     string              `json:"name" db:"name"`
	Address                  *string             `json:"address" db:"address"`
	City                     *string             `json:"city" db:"city"`
	State                    *string             `json:"state" db:"state"`
	Zip                      *string             `json:"zip" db:"zip"`
	ManagerEmployeeID        *uuid.UUID          `json:"manager_employee_id" db:"manager_employee_id"`
	MaximumCapacityCubicFeet decimal.NullDecimal `json:"maximum_capacity_cubic_feet" db:"maximum_capacity_cubic_feet"`
	CreatedAt                time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time           `json:"updated_at" db:"updated_at"`
}

// WarehouseCapacity reports how full a warehouse is. Used capacity is the sum
// of quantity times item cubic feet over every item stored in the warehouse.
type WarehouseCapacity struct {
	WarehouseID              uuid.UUID           `json:"warehouse_id"`
	MaximumCapacityCubicFeet decimal.NullDecimal `json:"maximum_capacity_cubic_feet"`
	UsedCapacityCubicFeet    decimal.Decimal     `json:"used_capacity_cubic_feet"`
	AvailableCubicFeet       decimal.Decimal     `json:"available_capacity_cubic_feet"`
	UtilizationPercent       decimal.Decimal     `json:"utilization_percent"`
}
