package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types for inventory history entries. The quantity effect of an
// entry is driven by which warehouse references are set, not by the type; the
// type is validated against the references at the boundary and kept for
// reporting.
const (
	TransactionInbound    = "INBOUND"
	TransactionOutbound   = "OUTBOUND"
	TransactionTransfer   = "TRANSFER"
	TransactionAdjustment = "ADJUSTMENT"
)

// InventoryHistory is one recorded inventory movement. QuantityChange is a
// strictly positive magnitude; direction comes from the from/to warehouses.
type InventoryHistory struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	ItemID                uuid.UUID  `json:"item_id" db:"item_id"`
	FromWarehouseID       *uuid.UUID `json:"from_warehouse_id" db:"from_warehouse_id"`
	ToWarehouseID         *uuid.UUID `json:"to_warehouse_id" db:"to_warehouse_id"`
	QuantityChange        int        `json:"quantity_change" db:"quantity_change"`
	TransactionType       string     `json:"transaction_type" db:"transaction_type"`
	Reason                *string    `json:"reason" db:"reason"`
	OccurredAt            time.Time  `json:"occurred_at" db:"occurred_at"`
	PerformedByEmployeeID *uuid.UUID `json:"performed_by_employee_id" db:"performed_by_employee_id"`
}

// ValidTransactionType reports whether t is one of the known transaction types.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionInbound, TransactionOutbound, TransactionTransfer, TransactionAdjustment:
		return true
	}
	return false
}
