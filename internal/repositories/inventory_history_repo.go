package repositories

import (
	"context"
	"time"

	"stocktrail/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type InventoryHistoryRepository interface {
	Create(ctx context.Context, entry *models.InventoryHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryHistory, error)
	Update(ctx context.Context, entry *models.InventoryHistory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.InventoryHistory, error)
	// FindByWarehouseAndDateRange returns entries touching the warehouse as
	// source or destination, bounded inclusively where a bound is given,
	// newest first.
	FindByWarehouseAndDateRange(ctx context.Context, warehouseID uuid.UUID, start, end *time.Time) ([]*models.InventoryHistory, error)
	FindRecent(ctx context.Context, limit int) ([]*models.InventoryHistory, error)
	ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error)
}

type inventoryHistoryRepo struct {
	db DBTX
}

func NewInventoryHistoryRepo(db DBTX) InventoryHistoryRepository {
	return &inventoryHistoryRepo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const historyColumns = `id, item_id, from_warehouse_id, to_warehouse_id, quantity_change, transaction_type, reason, occurred_at, performed_by_employee_id`

func (r *inventoryHistoryRepo) scanEntry(row interface{ Scan(...any) error }) (*models.InventoryHistory, error) {
	entry := &models.InventoryHistory{}
	err := row.Scan(
		&entry.ID, &entry.ItemID, &entry.FromWarehouseID, &entry.ToWarehouseID,
		&entry.QuantityChange, &entry.TransactionType, &entry.Reason,
		&entry.OccurredAt, &entry.PerformedByEmployeeID,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *inventoryHistoryRepo) collect(ctx context.Context, query string, args ...any) ([]*models.InventoryHistory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.InventoryHistory
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *inventoryHistoryRepo) Create(ctx context.Context, entry *models.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (id, item_id, from_warehouse_id, to_warehouse_id, quantity_change, transaction_type, reason, occurred_at, performed_by_employee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.ItemID, entry.FromWarehouseID, entry.ToWarehouseID,
		entry.QuantityChange, entry.TransactionType, entry.Reason,
		entry.OccurredAt, entry.PerformedByEmployeeID,
	)
	return err
}

func (r *inventoryHistoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM inventory_history WHERE id = $1`
	return r.scanEntry(r.db.QueryRow(ctx, query, id))
}

func (r *inventoryHistoryRepo) Update(ctx context.Context, entry *models.InventoryHistory) error {
	query := `
		UPDATE inventory_history
		SET item_id = $1, from_warehouse_id = $2, to_warehouse_id = $3, quantity_change = $4, transaction_type = $5, reason = $6, occurred_at = $7, performed_by_employee_id = $8
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query,
		entry.ItemID, entry.FromWarehouseID, entry.ToWarehouseID,
		entry.QuantityChange, entry.TransactionType, entry.Reason,
		entry.OccurredAt, entry.PerformedByEmployeeID, entry.ID,
	)
	return err
}

func (r *inventoryHistoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM inventory_history WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *inventoryHistoryRepo) List(ctx context.Context, limit, offset int) ([]*models.InventoryHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM inventory_history
		ORDER BY occurred_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.collect(ctx, query, limit, offset)
}

func (r *inventoryHistoryRepo) FindByWarehouseAndDateRange(ctx context.Context, warehouseID uuid.UUID, start, end *time.Time) ([]*models.InventoryHistory, error) {
	builder := psql.
		Select("id", "item_id", "from_warehouse_id", "to_warehouse_id",
			"quantity_change", "transaction_type", "reason", "occurred_at", "performed_by_employee_id").
		From("inventory_history").
		Where(sq.Or{
			sq.Eq{"from_warehouse_id": warehouseID},
			sq.Eq{"to_warehouse_id": warehouseID},
		}).
		OrderBy("occurred_at DESC")

	if start != nil {
		builder = builder.Where(sq.GtOrEq{"occurred_at": *start})
	}
	if end != nil {
		builder = builder.Where(sq.LtOrEq{"occurred_at": *end})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, query, args...)
}

func (r *inventoryHistoryRepo) FindRecent(ctx context.Context, limit int) ([]*models.InventoryHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM inventory_history
		ORDER BY occurred_at DESC
		LIMIT $1
	`
	return r.collect(ctx, query, limit)
}

func (r *inventoryHistoryRepo) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM inventory_history WHERE item_id = $1)`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&exists)
	return exists, err
}
