package repositories

import (
	"context"

	"stocktrail/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseItemsRepository is the quantity store: one row per
// (warehouse, item) pair. Callers enforce non-negativity and capacity; this
// layer only persists and aggregates.
type WarehouseItemsRepository interface {
	Get(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error)
	// GetForUpdate locks the pair row for the remainder of the surrounding
	// transaction so concurrent adjustments on the same pair serialize.
	GetForUpdate(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error)
	Upsert(ctx context.Context, wi *models.WarehouseItem) error
	Delete(ctx context.Context, warehouseID, itemID uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.WarehouseItem, error)
	SumOccupiedVolume(ctx context.Context, warehouseID uuid.UUID) (decimal.Decimal, error)
	ExistsByWarehouse(ctx context.Context, warehouseID uuid.UUID) (bool, error)
	ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error)
	SearchByItem(ctx context.Context, q string) ([]*models.ItemStockRow, error)
}

type warehouseItemsRepo struct {
	db DBTX
}

func NewWarehouseItemsRepo(db DBTX) WarehouseItemsRepository {
	return &warehouseItemsRepo{db: db}
}

const warehouseItemColumns = `warehouse_id, item_id, quantity, last_updated`

func (r *warehouseItemsRepo) scanPair(row interface{ Scan(...any) error }) (*models.WarehouseItem, error) {
	wi := &models.WarehouseItem{}
	err := row.Scan(&wi.WarehouseID, &wi.ItemID, &wi.Quantity, &wi.LastUpdated)
	if err != nil {
		return nil, err
	}
	return wi, nil
}

func (r *warehouseItemsRepo) Get(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	query := `
		SELECT ` + warehouseItemColumns + `
		FROM warehouse_items
		WHERE warehouse_id = $1 AND item_id = $2
	`
	return r.scanPair(r.db.QueryRow(ctx, query, warehouseID, itemID))
}

func (r *warehouseItemsRepo) GetForUpdate(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	query := `
		SELECT ` + warehouseItemColumns + `
		FROM warehouse_items
		WHERE warehouse_id = $1 AND item_id = $2
		FOR UPDATE
	`
	return r.scanPair(r.db.QueryRow(ctx, query, warehouseID, itemID))
}

func (r *warehouseItemsRepo) Upsert(ctx context.Context, wi *models.WarehouseItem) error {
	query := `
		INSERT INTO warehouse_items (warehouse_id, item_id, quantity, last_updated)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (warehouse_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity, last_updated = NOW()
	`
	_, err := r.db.Exec(ctx, query, wi.WarehouseID, wi.ItemID, wi.Quantity)
	return err
}

func (r *warehouseItemsRepo) Delete(ctx context.Context, warehouseID, itemID uuid.UUID) error {
	query := `DELETE FROM warehouse_items WHERE warehouse_id = $1 AND item_id = $2`
	_, err := r.db.Exec(ctx, query, warehouseID, itemID)
	return err
}

func (r *warehouseItemsRepo) List(ctx context.Context, limit, offset int) ([]*models.WarehouseItem, error) {
	query := `
		SELECT ` + warehouseItemColumns + `
		FROM warehouse_items
		ORDER BY last_updated DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []*models.WarehouseItem
	for rows.Next() {
		wi, err := r.scanPair(rows)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, wi)
	}
	return pairs, rows.Err()
}

func (r *warehouseItemsRepo) SumOccupiedVolume(ctx context.Context, warehouseID uuid.UUID) (decimal.Decimal, error) {
	var used decimal.Decimal
	query := `
		SELECT COALESCE(SUM(wi.quantity * i.cubic_feet), 0)
		FROM warehouse_items wi
		JOIN items i ON i.id = wi.item_id
		WHERE wi.warehouse_id = $1
	`
	err := r.db.QueryRow(ctx, query, warehouseID).Scan(&used)
	if err != nil {
		return decimal.Zero, err
	}
	return used, nil
}

func (r *warehouseItemsRepo) ExistsByWarehouse(ctx context.Context, warehouseID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM warehouse_items WHERE warehouse_id = $1)`
	err := r.db.QueryRow(ctx, query, warehouseID).Scan(&exists)
	return exists, err
}

func (r *warehouseItemsRepo) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM warehouse_items WHERE item_id = $1)`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&exists)
	return exists, err
}

func (r *warehouseItemsRepo) SearchByItem(ctx context.Context, q string) ([]*models.ItemStockRow, error) {
	query := `
		SELECT i.id, i.sku, i.name, w.id, w.name, wi.quantity
		FROM warehouse_items wi
		JOIN items i ON i.id = wi.item_id
		JOIN warehouses w ON w.id = wi.warehouse_id
		WHERE i.name ILIKE $1 OR i.sku ILIKE $1
		ORDER BY i.name, w.name
	`
	rows, err := r.db.Query(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.ItemStockRow
	for rows.Next() {
		row := &models.ItemStockRow{}
		if err := rows.Scan(&row.ItemID, &row.SKU, &row.ItemName, &row.WarehouseID, &row.WarehouseName, &row.Quantity); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
