package repositories

import (
	"context"

	"stocktrail/internal/models"

	"github.com/google/uuid"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error)
	ListAll(ctx context.Context) ([]*models.Warehouse, error)
}

type warehouseRepo struct {
	db DBTX
}

func NewWarehouseRepository(db DBTX) WarehouseRepository {
	return &warehouseRepo{db: db}
}

const warehouseColumns = `id, name, address, city, state, zip, manager_employee_id, maximum_capacity_cubic_feet, created_at, updated_at`

func (r *warehouseRepo) scanWarehouse(row interface{ Scan(...any) error }) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	err := row.Scan(
		&warehouse.ID, &warehouse.Name, &warehouse.Address, &warehouse.City,
		&warehouse.State, &warehouse.Zip, &warehouse.ManagerEmployeeID,
		&warehouse.MaximumCapacityCubicFeet, &warehouse.CreatedAt, &warehouse.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, address, city, state, zip, manager_employee_id, maximum_capacity_cubic_feet, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.City,
		warehouse.State, warehouse.Zip, warehouse.ManagerEmployeeID, warehouse.MaximumCapacityCubicFeet,
	)
	return err
}

func (r *warehouseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	return r.scanWarehouse(r.db.QueryRow(ctx, query, id))
}

func (r *warehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $1, address = $2, city = $3, state = $4, zip = $5, manager_employee_id = $6, maximum_capacity_cubic_feet = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		warehouse.Name, warehouse.Address, warehouse.City, warehouse.State,
		warehouse.Zip, warehouse.ManagerEmployeeID, warehouse.MaximumCapacityCubicFeet, warehouse.ID,
	)
	return err
}

func (r *warehouseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM warehouses WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *warehouseRepo) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse, err := r.scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}

func (r *warehouseRepo) ListAll(ctx context.Context) ([]*models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse, err := r.scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}
